package dialog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/billie-coop/confirm/dialog/sizing"
)

// ErrNoHost is returned when a dialog is shown without a host.
var ErrNoHost = errors.New("no host to show dialog in")

// Scope holds the factory used by one session. Callers may swap the
// factory temporarily and must restore it afterwards.
type Scope struct {
	mu      sync.RWMutex
	factory Factory
}

// NewScope returns a scope using f, or a default factory when f is nil.
func NewScope(f Factory) *Scope {
	if f == nil {
		f = &DefaultFactory{Sizing: sizing.DefaultConfig()}
	}
	return &Scope{factory: f}
}

// Factory returns the current factory.
func (s *Scope) Factory() Factory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.factory
}

// SetFactory replaces the factory. A nil factory restores the default.
func (s *Scope) SetFactory(f Factory) {
	if f == nil {
		f = &DefaultFactory{Sizing: sizing.DefaultConfig()}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factory = f
}

// Swap installs f and returns a function that puts the previous factory
// back.
//
//	restore := scope.Swap(custom)
//	defer restore()
func (s *Scope) Swap(f Factory) (restore func()) {
	if f == nil {
		f = &DefaultFactory{Sizing: sizing.DefaultConfig()}
	}
	s.mu.Lock()
	prev := s.factory
	s.factory = f
	s.mu.Unlock()

	return func() { s.SetFactory(prev) }
}

// Show creates a dialog with the scope's factory and opens it in host.
func (s *Scope) Show(host Host, req Request, listener func(d *Dialog)) (*Dialog, error) {
	return ShowWith(s.Factory(), host, req, listener)
}

// ShowWith creates a dialog with f and opens it in host. listener is
// called once when the dialog resolves.
func ShowWith(f Factory, host Host, req Request, listener func(d *Dialog)) (*Dialog, error) {
	if host == nil {
		return nil, ErrNoHost
	}

	d := f.Create(req)
	d.OnClose(listener)

	c, err := host.Open(d)
	if err != nil {
		return nil, fmt.Errorf("failed to open dialog: %w", err)
	}
	d.Attach(c)
	return d, nil
}

var defaultScope = NewScope(nil)

// DefaultScope is used by the package level Show functions. It is
// configuration state shared by the whole process; sessions that need their
// own factory should create a Scope instead.
func DefaultScope() *Scope {
	return defaultScope
}

// ShowDefault shows a dialog with the default caption and message.
func ShowDefault(host Host, listener func(d *Dialog)) (*Dialog, error) {
	return defaultScope.Show(host, Request{Message: DefaultMessage}, listener)
}

// ShowMessage shows a dialog with the default caption and labels.
func ShowMessage(host Host, message string, listener func(d *Dialog)) (*Dialog, error) {
	return defaultScope.Show(host, Request{Message: message}, listener)
}

// Show shows a two-way dialog.
func Show(host Host, title, message, okLabel, cancelLabel string, listener func(d *Dialog)) (*Dialog, error) {
	return defaultScope.Show(host, Request{
		Title:       title,
		Message:     message,
		OkLabel:     okLabel,
		CancelLabel: cancelLabel,
	}, listener)
}

// ShowThreeWay shows a dialog with ok, not-ok and cancel buttons.
func ShowThreeWay(host Host, title, message, okLabel, cancelLabel, notOkLabel string, listener func(d *Dialog)) (*Dialog, error) {
	return defaultScope.Show(host, Request{
		Title:       title,
		Message:     message,
		OkLabel:     okLabel,
		CancelLabel: cancelLabel,
		NotOkLabel:  notOkLabel,
	}, listener)
}
