package wrapper

import "github.com/marcus/dialogwrap/internal/mediareset"

// Hooks receives the wrapper's open/close notifications and performs the
// page-level side effects. DefaultHooks is the standard behavior; consumers
// extend it by embedding and overriding:
//
//	type journaled struct {
//	    wrapper.DefaultHooks
//	    j *journal.Journal
//	}
//
//	func (h journaled) DialogOpened(w *wrapper.Wrapper, isModal bool) {
//	    h.DefaultHooks.DialogOpened(w, isModal)
//	    h.j.Record(w.Dialog().ID(), "open", isModal)
//	}
type Hooks interface {
	// DialogOpened runs after the normalized open notification is dispatched.
	DialogOpened(w *Wrapper, isModal bool)

	// DialogClosed runs when the dialog's native close signal fires.
	DialogClosed(w *Wrapper)
}

// DefaultHooks performs the standard side effects: scroll lock on modal
// open, media reset and lock release on close.
type DefaultHooks struct{}

func (DefaultHooks) DialogOpened(w *Wrapper, isModal bool) {
	if isModal {
		w.AcquireScrollLock()
	}
}

func (DefaultHooks) DialogClosed(w *Wrapper) {
	mediareset.ResetFrames(w.Dialog())
	w.ReleaseScrollLock()
}
