// Package dialog implements a reusable confirmation dialog: a factory that
// describes the dialog and estimates its size, and a controller that
// resolves it exactly once as confirmed, declined or canceled.
//
// Rendering is left to a host. A host opens a Dialog by returning a
// Container, receives the caption, message, buttons and size through the
// capability interfaces below, and reports user input back through
// Dialog.Press, Dialog.PressButton or Controller.Activate.
//
// Example usage:
//
//	dialog.Show(host, "Delete", "Delete 3 files?", "Delete", "Keep",
//		func(d *dialog.Dialog) {
//			if d.IsConfirmed() {
//				deleteFiles()
//			}
//		})
package dialog

import (
	"fmt"
	"sync"

	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
)

// TextHost can show a caption and a message.
type TextHost interface {
	SetCaption(caption string)
	SetMessage(text string, mode content.Mode)
}

// ButtonHost can show buttons in the given order.
type ButtonHost interface {
	SetButtons(buttons []*Button)
}

// Resizer applies a recommended size.
type Resizer interface {
	Resize(size sizing.Dimensions)
}

// Container is the visual part of one open dialog.
type Container interface {
	TextHost
	ButtonHost
	Resizer
	Dismisser
}

// Host opens dialogs, typically modally on top of a parent view.
type Host interface {
	Open(d *Dialog) (Container, error)
}

// Dialog is a confirmation dialog created by a Factory.
type Dialog struct {
	*Controller

	id string

	mu        sync.Mutex
	caption   string
	message   string
	mode      content.Mode
	size      sizing.Dimensions
	container Container

	okButton     *Button
	cancelButton *Button
	notOkButton  *Button
	buttons      []*Button
}

// ID returns the unique id of this dialog instance.
func (d *Dialog) ID() string { return d.id }

func (d *Dialog) Caption() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caption
}

// Message returns the message as given, before formatting.
func (d *Dialog) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

func (d *Dialog) ContentMode() content.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// Text returns the message formatted for a terminal.
func (d *Dialog) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return content.Format(d.message, d.mode)
}

// HTML returns the message formatted as markup.
func (d *Dialog) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return content.FormatHTML(d.message, d.mode)
}

// Size returns the size estimated when the dialog was created.
func (d *Dialog) Size() sizing.Dimensions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

func (d *Dialog) OkButton() *Button     { return d.okButton }
func (d *Dialog) CancelButton() *Button { return d.cancelButton }

// NotOkButton is nil for two-way dialogs.
func (d *Dialog) NotOkButton() *Button { return d.notOkButton }

// Buttons returns the buttons in display order.
func (d *Dialog) Buttons() []*Button {
	out := make([]*Button, len(d.buttons))
	copy(out, d.buttons)
	return out
}

// SetCaption changes the caption, updating an attached container.
func (d *Dialog) SetCaption(caption string) {
	d.mu.Lock()
	d.caption = caption
	c := d.container
	d.mu.Unlock()

	if c != nil {
		c.SetCaption(caption)
	}
}

// SetMessage changes the message, updating an attached container.
func (d *Dialog) SetMessage(message string) {
	d.mu.Lock()
	d.message = message
	mode, c := d.mode, d.container
	d.mu.Unlock()

	if c != nil {
		c.SetMessage(message, mode)
	}
}

// SetContentMode changes how the message is interpreted.
func (d *Dialog) SetContentMode(mode content.Mode) {
	d.mu.Lock()
	d.mode = mode
	message, c := d.message, d.container
	d.mu.Unlock()

	if c != nil {
		c.SetMessage(message, mode)
	}
}

// OnClose registers the listener that receives the resolved dialog.
func (d *Dialog) OnClose(l func(d *Dialog)) {
	if l == nil {
		d.OnResolve(nil)
		return
	}
	d.OnResolve(func(*Controller) { l(d) })
}

// Press activates the trigger bound to the button with the given id.
// With duplicate ids the first button in display order wins.
func (d *Dialog) Press(id ButtonID) error {
	for _, b := range d.buttons {
		if b.ID == id {
			return d.PressButton(b)
		}
	}
	return fmt.Errorf("%w: unknown button %q", ErrInvalidTrigger, id)
}

// PressButton activates the trigger bound to b. Buttons are matched by
// identity against the dialog's own ok, not-ok and cancel buttons, so ids
// chosen by custom builders do not matter.
func (d *Dialog) PressButton(b *Button) error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: nil button", ErrInvalidTrigger)
	case b == d.okButton:
		return d.Activate(TriggerOk)
	case b == d.notOkButton:
		return d.Activate(TriggerNotOk)
	case b == d.cancelButton:
		return d.Activate(TriggerCancel)
	}
	return fmt.Errorf("%w: button %q does not belong to this dialog", ErrInvalidTrigger, b.ID)
}

// Attach pushes the dialog's content into c and makes c the close action.
// A dialog that resolved before Attach dismisses c right away.
func (d *Dialog) Attach(c Container) {
	d.mu.Lock()
	d.container = c
	caption, message, mode, size := d.caption, d.message, d.mode, d.size
	d.mu.Unlock()

	c.SetCaption(caption)
	c.SetMessage(message, mode)
	c.SetButtons(d.Buttons())
	c.Resize(size)
	d.SetDismisser(c)
}
