package dialog

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/billie-coop/confirm/internal/logging"
)

// ErrInvalidTrigger is returned by Activate for triggers the controller was
// not configured for, such as TriggerNotOk on a two-way dialog.
var ErrInvalidTrigger = errors.New("invalid trigger")

// Resolution is the outcome of a confirmation.
type Resolution int

const (
	// Canceled is the initial value and the result of cancel or dismissal.
	Canceled Resolution = iota
	Confirmed
	Declined
)

func (r Resolution) String() string {
	switch r {
	case Canceled:
		return "canceled"
	case Confirmed:
		return "confirmed"
	case Declined:
		return "declined"
	default:
		return fmt.Sprintf("resolution(%d)", int(r))
	}
}

// Trigger is a user action that resolves a dialog.
type Trigger int

const (
	TriggerOk Trigger = iota
	TriggerNotOk
	TriggerCancel
	// TriggerDismiss is an implicit dismissal: escape key, close icon.
	TriggerDismiss
)

func (t Trigger) String() string {
	switch t {
	case TriggerOk:
		return "ok"
	case TriggerNotOk:
		return "not_ok"
	case TriggerCancel:
		return "cancel"
	case TriggerDismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// Dismisser hides or detaches the visual container of a dialog.
type Dismisser interface {
	Dismiss()
}

// Listener receives the resolved controller exactly once.
type Listener func(c *Controller)

// Controller is the confirmation state machine. The first trigger resolves
// it; every later trigger is ignored.
type Controller struct {
	mu         sync.Mutex
	threeWay   bool
	resolution Resolution
	trigger    Trigger
	resolved   bool
	listener   Listener
	dismisser  Dismisser
	logger     *slog.Logger
}

// NewController creates an unresolved controller. threeWay enables
// TriggerNotOk.
func NewController(threeWay bool, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		threeWay:   threeWay,
		resolution: Canceled,
		logger:     logger,
	}
}

// OnResolve registers the listener. Registering again before resolution
// replaces the previous listener.
func (c *Controller) OnResolve(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// SetDismisser sets the close action signalled after the listener runs.
// On an already resolved controller d is dismissed immediately.
func (c *Controller) SetDismisser(d Dismisser) {
	c.mu.Lock()
	c.dismisser = d
	late := c.resolved
	c.mu.Unlock()

	if late && d != nil {
		d.Dismiss()
	}
}

// Activate resolves the controller with the outcome of t, invokes the
// listener and then dismisses the container. It is a no-op once resolved.
func (c *Controller) Activate(t Trigger) error {
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		c.logger.Debug("ignoring trigger on resolved dialog", "trigger", t)
		return nil
	}

	var resolution Resolution
	switch t {
	case TriggerOk:
		resolution = Confirmed
	case TriggerNotOk:
		if !c.threeWay {
			c.mu.Unlock()
			c.logger.Warn("not-ok trigger on two-way dialog")
			return fmt.Errorf("%w: %s on two-way dialog", ErrInvalidTrigger, t)
		}
		resolution = Declined
	case TriggerCancel, TriggerDismiss:
		resolution = Canceled
	default:
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrInvalidTrigger, t)
	}

	c.resolution = resolution
	c.trigger = t
	c.resolved = true
	listener, dismisser := c.listener, c.dismisser
	c.mu.Unlock()

	c.logger.Debug("dialog resolved", "trigger", t, "resolution", resolution)

	if listener != nil {
		listener(c)
	}
	if dismisser != nil {
		dismisser.Dismiss()
	}
	return nil
}

// Resolution returns the current outcome. It is Canceled until resolved.
func (c *Controller) Resolution() Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolution
}

// Trigger returns the trigger that resolved the controller and whether it
// has been resolved at all.
func (c *Controller) Trigger() (Trigger, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trigger, c.resolved
}

// Resolved reports whether a trigger has been accepted.
func (c *Controller) Resolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// ThreeWay reports whether the controller accepts TriggerNotOk.
func (c *Controller) ThreeWay() bool {
	return c.threeWay
}

// IsConfirmed reports whether the user pressed ok.
func (c *Controller) IsConfirmed() bool {
	return c.Resolution() == Confirmed
}

// IsDeclined reports whether the user pressed not-ok.
func (c *Controller) IsDeclined() bool {
	return c.Resolution() == Declined
}

// IsCanceled reports whether the dialog was canceled or dismissed.
func (c *Controller) IsCanceled() bool {
	return c.Resolution() == Canceled
}
