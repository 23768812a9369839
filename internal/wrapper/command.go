package wrapper

import "github.com/marcus/dialogwrap/internal/dom"

// Command values recognized on trigger controls.
const (
	CommandShowModal = "show-modal"
	CommandClose     = "close"
)

// wireCommandControls polyfills declarative command wiring for hosts without
// native command events. Controls are located document-wide by the dialog's
// id, matching the platform's addressing model: trigger and close buttons do
// not have to live inside the wrapper. A missing control just skips the
// corresponding wiring.
func (w *Wrapper) wireCommandControls() {
	if w.doc.Caps().CommandEvents {
		return
	}
	id := w.dialog.ID()
	if id == "" {
		return
	}

	w.triggerBtn = w.doc.QuerySelector(`[commandfor="` + id + `"][command="` + CommandShowModal + `"]`)
	if w.triggerBtn != nil {
		w.listen(w.triggerBtn, "click", func(*dom.Event) {
			if err := w.dialog.ShowModal(); err != nil {
				w.log.Warn("dialog wrapper: show-modal command failed", "dialog", id, "err", err)
			}
		})
	}

	w.closeBtn = w.doc.QuerySelector(`[commandfor="` + id + `"][command="` + CommandClose + `"]`)
	if w.closeBtn != nil {
		w.listen(w.closeBtn, "click", func(*dom.Event) {
			w.dialog.Close()
		})
	}
}
