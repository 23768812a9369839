package wrapper

import (
	"testing"

	"github.com/marcus/dialogwrap/internal/dom"
)

// commandPage extends the basic page with a trigger and a close control that
// address the dialog by id. The controls live outside the wrapper element on
// purpose: addressing is document-wide.
func commandPage(t *testing.T, caps dom.Capabilities) (*dom.Document, *Wrapper, *dom.Element, *dom.Element, *dom.Element) {
	t.Helper()
	doc, wrapEl, dlg := newPage(t)
	doc.SetCaps(caps)
	dlg.SetAttr("id", "prefs-dialog")

	trigger := doc.NewElement("button")
	trigger.SetAttr("commandfor", "prefs-dialog")
	trigger.SetAttr("command", CommandShowModal)
	doc.Root().AppendChild(trigger)

	closeBtn := doc.NewElement("button")
	closeBtn.SetAttr("commandfor", "prefs-dialog")
	closeBtn.SetAttr("command", CommandClose)
	dlg.AppendChild(closeBtn)

	w := New(doc, wrapEl)
	w.Attach()
	return doc, w, dlg, trigger, closeBtn
}

func TestCommandPolyfill(t *testing.T) {
	_, _, dlg, trigger, closeBtn := commandPage(t, polyfillCaps)

	trigger.Click()
	if !dlg.Modal() {
		t.Fatal("trigger click did not open the dialog modally")
	}

	closeBtn.Click()
	if dlg.Open() {
		t.Fatal("close control click did not close the dialog")
	}
}

func TestCommandPolyfillSkippedWhenNative(t *testing.T) {
	_, w, dlg, trigger, _ := commandPage(t, dom.DefaultCapabilities())

	if w.triggerBtn != nil || w.closeBtn != nil {
		t.Error("wrapper resolved command controls despite native support")
	}
	// Only the toggle and close subscriptions on the dialog itself
	if len(w.bound) != 2 {
		t.Errorf("bound listeners = %d, want 2", len(w.bound))
	}

	// The host's own routing still works
	trigger.Click()
	if !dlg.Modal() {
		t.Error("native command routing did not open the dialog")
	}
}

func TestCommandPolyfillMissingControls(t *testing.T) {
	doc, wrapEl, dlg := newPage(t)
	doc.SetCaps(polyfillCaps)

	w := New(doc, wrapEl)
	w.Attach()

	if w.triggerBtn != nil || w.closeBtn != nil {
		t.Error("controls resolved on a page that declares none")
	}
	if len(w.bound) != 2 {
		t.Errorf("bound listeners = %d, want 2", len(w.bound))
	}
	if dlg.Open() {
		t.Error("dialog opened spontaneously")
	}
}

func TestCommandPolyfillIgnoresForeignControls(t *testing.T) {
	doc, _, dlg, _, _ := commandPage(t, polyfillCaps)

	other := doc.NewElement("button")
	other.SetAttr("commandfor", "some-other-dialog")
	other.SetAttr("command", CommandShowModal)
	doc.Root().AppendChild(other)

	other.Click()
	if dlg.Open() {
		t.Error("control addressing another dialog opened this one")
	}
}
