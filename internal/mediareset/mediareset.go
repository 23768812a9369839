// Package mediareset stops playback in embedded frames when a dialog closes.
//
// Reassigning a frame's source alone is not enough to interrupt playback on
// every engine once lazy loading is involved, so the reset removes and
// restores attributes in a fixed order: the loading attribute comes off
// first, then the source is cleared, then loading is put back, and the
// source goes back last. The whole sequence runs synchronously in the close
// handler's turn; a deferred restore would race with a rapid reopen and
// bring back a stale source.
package mediareset

import "github.com/marcus/dialogwrap/internal/dom"

// ResetFrames blanks and restores the source of every iframe descendant of
// container that has one. Frames without a source are skipped.
func ResetFrames(container *dom.Element) {
	for _, frame := range container.ElementsByTag("iframe") {
		src, ok := frame.Attr("src")
		if !ok || src == "" {
			continue
		}
		loading, hadLoading := frame.Attr("loading")
		if hadLoading {
			frame.RemoveAttr("loading")
		}
		frame.RemoveAttr("src")
		if hadLoading {
			frame.SetAttr("loading", loading)
		}
		frame.SetAttr("src", src)
	}
}
