package dom

import "fmt"

// Dialog state names used by toggle events.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Open reports whether the dialog element is currently shown.
func (e *Element) Open() bool {
	return e.open
}

// Modal reports whether the dialog element is shown modally.
func (e *Element) Modal() bool {
	return e.open && e.modal
}

// Show opens the dialog non-modally. It fails if the element is not a dialog
// or is already open.
func (e *Element) Show() error {
	return e.show(false)
}

// ShowModal opens the dialog modally. It fails if the element is not a
// dialog or is already open.
func (e *Element) ShowModal() error {
	return e.show(true)
}

func (e *Element) show(modal bool) error {
	if e.Tag != "dialog" {
		return fmt.Errorf("show dialog: element is a %q, not a dialog", e.Tag)
	}
	if e.open {
		return fmt.Errorf("show dialog: dialog %q is already open", e.ID())
	}
	e.open = true
	e.modal = modal
	e.SetAttr("open", "")

	e.DispatchEvent(&Event{Type: "toggle", OldState: StateClosed, NewState: StateOpen})
	return nil
}

// Close closes an open dialog, firing a toggle event followed by a close
// event. Closing a dialog that is not open is a no-op, matching the
// platform's close() semantics.
func (e *Element) Close() {
	if !e.open {
		return
	}
	e.open = false
	e.modal = false
	e.RemoveAttr("open")

	e.DispatchEvent(&Event{Type: "toggle", OldState: StateOpen, NewState: StateClosed})
	e.DispatchEvent(&Event{Type: "close"})
}
