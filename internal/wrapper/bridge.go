package wrapper

import "github.com/marcus/dialogwrap/internal/dom"

// The event bridge subscribes to the dialog's native toggle and close
// signals and republishes a single normalized "open" notification carrying
// modality. Close side effects run unconditionally: even a non-modal dialog
// releases a scroll lock it happens to hold.

func (w *Wrapper) bindDialogEvents() {
	w.listen(w.dialog, "toggle", w.handleToggle)
	w.listen(w.dialog, "close", w.handleClose)
}

// handleToggle reacts to the dialog toggling open. Modality is determined by
// asking the document whether the dialog, addressed by id, currently matches
// the host's modal predicate. The open notification fires for every open,
// modal or not; only the scroll-lock side effect is modality-gated, inside
// the hooks.
func (w *Wrapper) handleToggle(ev *dom.Event) {
	if ev.NewState != dom.StateOpen {
		return
	}

	isModal := false
	if el := w.doc.ElementByID(w.dialog.ID()); el != nil {
		isModal = dom.Matches(el, ":modal")
	}

	w.dialog.DispatchEvent(&dom.Event{
		Type:    EventOpen,
		Bubbles: true,
		IsModal: isModal,
	})

	w.hooks.DialogOpened(w, isModal)
}

// handleClose runs the close side effects. No modality check here: the
// dialog is already closed and the hooks decide what needs undoing.
func (w *Wrapper) handleClose(ev *dom.Event) {
	w.hooks.DialogClosed(w)
}
