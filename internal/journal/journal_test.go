package journal

import (
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	if err := j.Record("settings-dialog", "open", true); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Record("settings-dialog", "close", false); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Record("help-dialog", "open", true); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Newest first
	if entries[0].DialogID != "help-dialog" || entries[0].Event != "open" {
		t.Errorf("entries[0] = %+v, want the help-dialog open", entries[0])
	}
	if !entries[0].Modal {
		t.Error("entries[0].Modal = false, want true")
	}
	if entries[2].DialogID != "settings-dialog" || entries[2].Event != "open" {
		t.Errorf("entries[2] = %+v, want the first settings open", entries[2])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		if err := j.Record("settings-dialog", "open", true); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestRecentEmpty(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from an empty journal, want 0", len(entries))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "events.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	if err := j.Record("settings-dialog", "open", true); err != nil {
		t.Errorf("Record after nested open: %v", err)
	}
}
