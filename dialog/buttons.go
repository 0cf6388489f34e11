package dialog

// Element IDs shared with hosts, so tests and themes can find the parts of
// a dialog.
const (
	DialogID  = "confirmdialog-window"
	MessageID = "confirmdialog-message"
)

// ButtonID identifies a dialog button. Hosts hand it back through Press.
type ButtonID string

const (
	OkID     ButtonID = "confirmdialog-ok-button"
	CancelID ButtonID = "confirmdialog-cancel-button"
	NotOkID  ButtonID = "confirmdialog-not-ok-button"
)

// Button describes one button of a dialog.
type Button struct {
	ID      ButtonID
	Caption string
	// Primary buttons are highlighted and focused when the dialog opens.
	Primary bool
}

// ButtonOrder places the buttons of a dialog. Any of the arguments may be
// nil and nil buttons are never returned.
type ButtonOrder func(cancel, notOk, ok *Button) []*Button

// DefaultButtonOrder returns cancel, not-ok, ok.
func DefaultButtonOrder(cancel, notOk, ok *Button) []*Button {
	return compact(cancel, notOk, ok)
}

func compact(buttons ...*Button) []*Button {
	out := make([]*Button, 0, len(buttons))
	for _, b := range buttons {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}
