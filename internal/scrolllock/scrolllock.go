// Package scrolllock suppresses page scrolling while a modal dialog is open.
//
// A Locker owns the page root's inline overflow style. Acquire and Release
// are counted so that several dialogs on one page can share a single Locker:
// the style is saved and forced on the first acquire and restored when the
// last holder releases. The saved value always comes from the most recent
// first acquire, keeping save/restore strictly paired.
package scrolllock

import "github.com/marcus/dialogwrap/internal/dom"

// Locker serializes scroll locking for one page root.
type Locker struct {
	root  *dom.Element
	depth int
	saved string
}

// New creates a Locker for the given page root element.
func New(root *dom.Element) *Locker {
	return &Locker{root: root}
}

// Acquire locks page scrolling. Only the first acquire touches the style;
// nested acquires just raise the count.
func (l *Locker) Acquire() {
	l.depth++
	if l.depth > 1 {
		return
	}
	l.saved = l.root.StyleValue("overflow")
	l.root.SetStyleValue("overflow", "hidden")
}

// Release undoes one Acquire. When the count reaches zero the saved overflow
// value is restored; if it was empty the property is dropped, which also
// removes a style attribute that would otherwise be left behind empty.
// Releasing an unheld lock is a no-op.
func (l *Locker) Release() {
	if l.depth == 0 {
		return
	}
	l.depth--
	if l.depth > 0 {
		return
	}
	if l.saved == "" {
		l.root.RemoveStyleValue("overflow")
	} else {
		l.root.SetStyleValue("overflow", l.saved)
	}
	l.saved = ""
}

// Depth returns the current number of holders.
func (l *Locker) Depth() int {
	return l.depth
}
