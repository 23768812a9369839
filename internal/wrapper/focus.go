package wrapper

import "strings"

// applyAutofocus marks exactly one element in the dialog for focus when it
// opens. Runs once at initialization.
//
// Precedence: an author-declared autofocus anywhere in the dialog subtree
// wins and the wrapper does nothing. Otherwise the wrapper's
// autofocus-target selector picks a dialog descendant, and if the selector
// is absent or matches nothing the dialog element itself is marked. The
// host's focus mechanics do the actual focusing; the wrapper only marks.
func (w *Wrapper) applyAutofocus() {
	if w.dialog.QuerySelector("[autofocus]") != nil {
		return
	}

	if sel, ok := w.root.Attr(AttrAutofocusTarget); ok && strings.TrimSpace(sel) != "" {
		if target := w.dialog.QuerySelector(sel); target != nil {
			target.SetAttr("autofocus", "")
			return
		}
		// No match is not an error; fall through to the dialog itself.
	}

	w.dialog.SetAttr("autofocus", "")
}
