package task

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreAddPrepends(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	first := New("first", now, CreateOptions{})
	second := New("second", now.Add(time.Second), CreateOptions{})
	if err := s.Add(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(second); err != nil {
		t.Fatal(err)
	}

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != second.ID {
		t.Errorf("newest task should lead the list, got %q", tasks[0].Title)
	}
}

func TestStoreAddValidates(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	bad := New("", now, CreateOptions{})
	if err := s.Add(bad); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Add(empty title) = %v, want ErrEmptyTitle", err)
	}

	badCol := New("x", now, CreateOptions{})
	badCol.Status = "soon"
	if err := s.Add(badCol); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("Add(bad column) = %v, want ErrInvalidColumn", err)
	}
	if s.Len() != 0 {
		t.Errorf("store should stay empty after rejected adds, got %d", s.Len())
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	task := New("persist me", time.Now(), CreateOptions{Priority: PriorityCritical, Status: ColumnNow})
	if err := s.Add(task); err != nil {
		t.Fatal(err)
	}

	reopened := Open(dir)
	got, ok := reopened.Get(task.ID)
	if !ok {
		t.Fatal("task not found after reopen")
	}
	if got.Title != "persist me" || got.Priority != PriorityCritical || got.Status != ColumnNow {
		t.Errorf("reloaded task = %+v", got)
	}
}

func TestStoreOpenBadSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SnapshotFile, "{not json")

	s := Open(dir)
	if s.Len() != 0 {
		t.Errorf("store should start empty on a corrupt snapshot, got %d tasks", s.Len())
	}
}

func TestStoreUpdate(t *testing.T) {
	s := newTestStore(t)
	task := New("original", time.Now(), CreateOptions{})
	if err := s.Add(task); err != nil {
		t.Fatal(err)
	}

	title := "renamed"
	prio := PriorityCritical
	if err := s.Update(task.ID, Patch{Title: &title, Priority: &prio}); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get(task.ID)
	if got.Title != "renamed" || got.Priority != PriorityCritical {
		t.Errorf("after update: %+v", got)
	}
	if got.Status != ColumnBacklog {
		t.Errorf("unpatched field changed: status = %q", got.Status)
	}
}

func TestStoreUpdateMissingID(t *testing.T) {
	s := newTestStore(t)
	title := "x"
	if err := s.Update("nope1234", Patch{Title: &title}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestStoreToggle(t *testing.T) {
	s := newTestStore(t)
	task := New("toggle me", time.Now(), CreateOptions{Status: ColumnNow})
	if err := s.Add(task); err != nil {
		t.Fatal(err)
	}

	if err := s.Toggle(task.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(task.ID)
	if !got.Completed {
		t.Error("task should be completed")
	}
	if got.Status != ColumnDone {
		t.Errorf("completing should move to done, got %q", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt should be set")
	}

	if err := s.Toggle(task.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(task.ID)
	if got.Completed {
		t.Error("task should be un-completed")
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt should be cleared")
	}
	if got.Status != ColumnDone {
		t.Errorf("un-completing should leave the column alone, got %q", got.Status)
	}
}

func TestStoreMoveLeavesCompletion(t *testing.T) {
	s := newTestStore(t)
	task := New("move me", time.Now(), CreateOptions{})
	if err := s.Add(task); err != nil {
		t.Fatal(err)
	}
	if err := s.Toggle(task.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Move(task.ID, ColumnNext); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(task.ID)
	if got.Status != ColumnNext {
		t.Errorf("status = %q, want next", got.Status)
	}
	if !got.Completed {
		t.Error("moving must not flip the completion flag")
	}
}

func TestStoreRemove(t *testing.T) {
	s := newTestStore(t)
	task := New("remove me", time.Now(), CreateOptions{})
	if err := s.Add(task); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(task.ID); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Errorf("got %d tasks after removal, want 0", s.Len())
	}
	if err := s.Remove(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Remove(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestStoreReplaceAll(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(New("old", time.Now(), CreateOptions{})); err != nil {
		t.Fatal(err)
	}

	fresh := []Task{
		New("a", time.Now(), CreateOptions{}),
		New("b", time.Now().Add(time.Second), CreateOptions{}),
	}
	s.ReplaceAll(fresh)

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Title != "a" || tasks[1].Title != "b" {
		t.Errorf("ReplaceAll should preserve order: %q, %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := newTestStore(t)

	var calls int
	unsubscribe := s.Subscribe(func() { calls++ })

	if err := s.Add(New("one", time.Now(), CreateOptions{})); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("got %d notifications after Add, want 1", calls)
	}

	s.Clear()
	if calls != 2 {
		t.Errorf("got %d notifications after Clear, want 2", calls)
	}

	unsubscribe()
	if err := s.Add(New("two", time.Now(), CreateOptions{})); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("unsubscribed observer was notified, calls = %d", calls)
	}
}

func TestStoreTasksReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(New("guarded", time.Now(), CreateOptions{})); err != nil {
		t.Fatal(err)
	}

	tasks := s.Tasks()
	tasks[0].Title = "mutated"

	got, _ := s.Get(tasks[0].ID)
	if got.Title != "guarded" {
		t.Error("mutating the returned slice must not affect the store")
	}
}
