package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dialogwrap/internal/dom"
)

func newTestModel(t *testing.T, caps dom.Capabilities) Model {
	t.Helper()
	m := New(Options{
		Caps:   caps,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model)
}

func key(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestOpenCloseCycle(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	m = press(t, m, "o")
	if !m.settings.Modal() {
		t.Fatal("'o' did not open the settings dialog modally")
	}
	if got := m.doc.Root().StyleValue("overflow"); got != "hidden" {
		t.Errorf("page overflow while modal = %q, want hidden", got)
	}

	m = press(t, m, "c")
	if m.settings.Open() {
		t.Fatal("'c' did not close the settings dialog")
	}
	if m.doc.Root().HasAttr("style") {
		t.Error("scroll lock not released after close")
	}
}

func TestOpenCloseCycleNativeHost(t *testing.T) {
	m := newTestModel(t, dom.DefaultCapabilities())

	m = press(t, m, "o")
	if !m.settings.Modal() {
		t.Fatal("'o' did not open the settings dialog on a native host")
	}
	m = press(t, m, "c")
	if m.settings.Open() {
		t.Fatal("'c' did not close the settings dialog on a native host")
	}
}

func TestBackdropDismiss(t *testing.T) {
	for _, caps := range []dom.Capabilities{{}, dom.DefaultCapabilities()} {
		m := newTestModel(t, caps)
		m = press(t, m, "o")
		if !m.settings.Open() {
			t.Fatal("settings dialog did not open")
		}
		m = press(t, m, "b")
		if m.settings.Open() {
			t.Errorf("backdrop click did not dismiss (caps %+v)", caps)
		}
	}
}

func TestHelpDialogToggle(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	m = press(t, m, "?")
	if !m.help.Modal() {
		t.Fatal("'?' did not open the help dialog")
	}
	m = press(t, m, "?")
	if m.help.Open() {
		t.Fatal("second '?' did not close the help dialog")
	}
}

func TestEscClosesTopmost(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	m = press(t, m, "o", "esc")
	if m.settings.Open() {
		t.Error("esc did not close the settings dialog")
	}
}

func TestSharedLockSurvivesStackedDialogs(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	m = press(t, m, "o", "?")
	if m.locker.Depth() != 2 {
		t.Fatalf("lock depth with two modals = %d, want 2", m.locker.Depth())
	}

	m = press(t, m, "?")
	if got := m.doc.Root().StyleValue("overflow"); got != "hidden" {
		t.Errorf("overflow after closing one of two modals = %q, want hidden", got)
	}

	m = press(t, m, "c")
	if m.doc.Root().HasAttr("style") {
		t.Error("scroll lock not released after both dialogs closed")
	}
}

func TestFeedRecordsNotifications(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	m = press(t, m, "o", "c")

	joined := strings.Join(m.feed.lines, "\n")
	if !strings.Contains(joined, "open   settings-dialog modal=true") {
		t.Errorf("feed missing open line, got %q", joined)
	}
	if !strings.Contains(joined, "close  settings-dialog") {
		t.Errorf("feed missing close line, got %q", joined)
	}
}

func TestAutoOpen(t *testing.T) {
	m := New(Options{
		Caps:     dom.Capabilities{},
		AutoOpen: true,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if !m.settings.Modal() {
		t.Error("autoopen did not show the settings dialog at startup")
	}
}

func TestAutofocusTargetsSaveButton(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	save := m.doc.ElementByID("save-btn")
	if save == nil {
		t.Fatal("save button missing from the sample page")
	}
	if !save.HasAttr("autofocus") {
		t.Error("save button not marked for autofocus")
	}
	if m.settings.HasAttr("autofocus") {
		t.Error("dialog marked despite a selector match")
	}
}

func TestQuitDetachesWrappers(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	next, cmd := m.Update(key("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("'q' returned no quit command")
	}

	before := len(m.feed.lines)
	_ = m.settings.ShowModal()
	if len(m.feed.lines) != before {
		t.Error("notifications still flowing after quit detached the wrappers")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t, dom.Capabilities{})

	out := m.View()
	if !strings.Contains(out, "Open settings") {
		t.Errorf("page view missing the trigger button, got:\n%s", out)
	}

	m = press(t, m, "o")
	out = m.View()
	if !strings.Contains(out, "Save") {
		t.Errorf("dialog view missing its save button, got:\n%s", out)
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if m.View() == "" {
		t.Error("View before the first WindowSizeMsg should render a placeholder")
	}
}
