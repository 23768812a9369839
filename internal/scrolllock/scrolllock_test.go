package scrolllock

import (
	"testing"

	"github.com/marcus/dialogwrap/internal/dom"
)

func TestAcquireRelease(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	l := New(root)

	l.Acquire()
	if got := root.StyleValue("overflow"); got != "hidden" {
		t.Errorf("overflow while locked = %q, want hidden", got)
	}
	if l.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", l.Depth())
	}

	l.Release()
	if root.HasAttr("style") {
		raw, _ := root.Attr("style")
		t.Errorf("style attribute %q left behind after release", raw)
	}
	if l.Depth() != 0 {
		t.Errorf("Depth after release = %d, want 0", l.Depth())
	}
}

func TestRestoresPreviousValue(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	root.SetStyleValue("overflow", "auto")
	l := New(root)

	l.Acquire()
	l.Release()

	if got := root.StyleValue("overflow"); got != "auto" {
		t.Errorf("overflow after release = %q, want auto", got)
	}
}

func TestPreservesUnrelatedProperties(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	root.SetStyleValue("color", "red")
	l := New(root)

	l.Acquire()
	l.Release()

	if got := root.StyleValue("color"); got != "red" {
		t.Errorf("color after release = %q, want red", got)
	}
	if root.StyleValue("overflow") != "" {
		t.Error("overflow property left behind after release")
	}
}

func TestCountedAcquires(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	l := New(root)

	l.Acquire()
	l.Acquire()

	l.Release()
	if got := root.StyleValue("overflow"); got != "hidden" {
		t.Errorf("overflow after first release = %q, want hidden (still held)", got)
	}

	l.Release()
	if root.HasAttr("style") {
		t.Error("style attribute left behind after final release")
	}
}

func TestReleaseWithoutAcquire(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	root.SetStyleValue("overflow", "scroll")
	l := New(root)

	l.Release()

	if got := root.StyleValue("overflow"); got != "scroll" {
		t.Errorf("overflow after spurious release = %q, want scroll", got)
	}
	if l.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", l.Depth())
	}
}

func TestSaveRestorePairingAcrossCycles(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root()
	l := New(root)

	// First cycle saves an empty value
	l.Acquire()
	l.Release()

	// Second cycle saves a fresh value, not the stale one
	root.SetStyleValue("overflow", "auto")
	l.Acquire()
	l.Release()

	if got := root.StyleValue("overflow"); got != "auto" {
		t.Errorf("overflow after second cycle = %q, want auto", got)
	}
}
