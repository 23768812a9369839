package wrapper

import "github.com/marcus/dialogwrap/internal/dom"

// wireLightDismiss polyfills outside-click dismissal for hosts without
// native closedby support. The dialog must opt in with closedby="any".
//
// A backdrop click is one whose target is the dialog element itself: clicks
// on interior content bubble up with the descendant as target and must not
// dismiss, so the target check is what separates a true outside click from
// one inside the dialog.
func (w *Wrapper) wireLightDismiss() {
	if w.doc.Caps().LightDismiss {
		return
	}
	if v, ok := w.dialog.Attr("closedby"); !ok || v != "any" {
		return
	}

	w.listen(w.dialog, "click", func(ev *dom.Event) {
		if ev.Target == w.dialog {
			w.dialog.Close()
		}
	})
}
