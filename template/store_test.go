package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/focusstudio/task"
)

func TestOpenFallsBackToDefaults(t *testing.T) {
	s := Open(t.TempDir())
	if len(s.Templates()) != len(Defaults()) {
		t.Errorf("fresh store should hold the defaults, got %d templates", len(s.Templates()))
	}
}

func TestOpenCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SnapshotFile), []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Open(dir)
	if len(s.Templates()) != len(Defaults()) {
		t.Errorf("corrupt snapshot should fall back to defaults, got %d templates", len(s.Templates()))
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	custom := New("Mine", []task.Task{{Title: "only task", Priority: task.PriorityHigh, Status: task.ColumnNow}})
	s.SetTemplates([]Template{custom})

	reopened := Open(dir)
	got := reopened.Templates()
	if len(got) != 1 || got[0].Name != "Mine" || got[0].ID != custom.ID {
		t.Errorf("reloaded templates = %+v", got)
	}
}

func TestAddAllowsDuplicateNames(t *testing.T) {
	s := Open(t.TempDir())
	before := len(s.Templates())

	a := New("Twin", nil)
	b := New("Twin", nil)
	s.Add(a)
	s.Add(b)

	if got := len(s.Templates()); got != before+2 {
		t.Errorf("got %d templates, want %d: same-named templates must coexist", got, before+2)
	}
}

func TestFindPrefersID(t *testing.T) {
	s := Open(t.TempDir())
	a := New("Twin", []task.Task{{Title: "from a", Priority: task.PriorityHigh, Status: task.ColumnNow}})
	b := New("Twin", nil)
	s.SetTemplates([]Template{a, b})

	got, ok := s.Find(b.ID)
	if !ok || got.ID != b.ID {
		t.Errorf("Find(id) = %+v, %v", got, ok)
	}

	got, ok = s.Find("Twin")
	if !ok || got.ID != a.ID {
		t.Errorf("Find(name) should return the first name match, got %+v", got)
	}

	if _, ok := s.Find("missing"); ok {
		t.Error("Find(missing) should report not found")
	}
}
