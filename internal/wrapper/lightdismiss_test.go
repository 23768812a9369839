package wrapper

import (
	"testing"

	"github.com/marcus/dialogwrap/internal/dom"
)

func TestLightDismissPolyfill(t *testing.T) {
	doc, wrapEl, dlg := newPage(t)
	doc.SetCaps(polyfillCaps)
	dlg.SetAttr("closedby", "any")
	content := doc.NewElement("p")
	dlg.AppendChild(content)

	New(doc, wrapEl).Attach()

	if err := dlg.ShowModal(); err != nil {
		t.Fatalf("ShowModal: %v", err)
	}

	// Clicks on interior content bubble to the dialog but must not dismiss
	content.Click()
	if !dlg.Open() {
		t.Fatal("content click dismissed the dialog")
	}

	// A click whose target is the dialog itself is a backdrop click
	dlg.Click()
	if dlg.Open() {
		t.Fatal("backdrop click did not dismiss the dialog")
	}
}

func TestLightDismissRequiresOptIn(t *testing.T) {
	doc, wrapEl, dlg := newPage(t)
	doc.SetCaps(polyfillCaps)

	w := New(doc, wrapEl)
	w.Attach()

	if len(w.bound) != 2 {
		t.Errorf("bound listeners = %d, want 2 (no dismiss wiring without closedby)", len(w.bound))
	}

	if err := dlg.ShowModal(); err != nil {
		t.Fatalf("ShowModal: %v", err)
	}
	dlg.Click()
	if !dlg.Open() {
		t.Error("dialog dismissed without closedby opt-in")
	}
}

func TestLightDismissSkippedWhenNative(t *testing.T) {
	doc, wrapEl, dlg := newPage(t)
	doc.SetCaps(dom.DefaultCapabilities())
	dlg.SetAttr("closedby", "any")

	w := New(doc, wrapEl)
	w.Attach()

	if len(w.bound) != 2 {
		t.Errorf("bound listeners = %d, want 2 (host dismisses natively)", len(w.bound))
	}

	if err := dlg.ShowModal(); err != nil {
		t.Fatalf("ShowModal: %v", err)
	}
	dlg.Click()
	if dlg.Open() {
		t.Error("native light dismiss did not close the dialog")
	}
}
