package board

import (
	"testing"
	"time"

	"github.com/amonks/focusstudio/task"
)

func mkTask(title string, status task.Column, priority task.Priority) task.Task {
	t := task.New(title, time.Now(), task.CreateOptions{Status: status, Priority: priority})
	return t
}

func TestProjectGroupsByStatus(t *testing.T) {
	tasks := []task.Task{
		mkTask("a", task.ColumnNow, task.PriorityHigh),
		mkTask("b", task.ColumnBacklog, task.PriorityHigh),
		mkTask("c", task.ColumnNow, task.PriorityHigh),
	}

	b := Project(tasks, Options{})
	now := b.Column(task.ColumnNow)
	if len(now) != 2 {
		t.Fatalf("got %d tasks in now, want 2", len(now))
	}
	if now[0].Title != "a" || now[1].Title != "c" {
		t.Errorf("insertion order not preserved: %q, %q", now[0].Title, now[1].Title)
	}
	if len(b.Column(task.ColumnBacklog)) != 1 {
		t.Errorf("backlog should have 1 task")
	}
	if len(b.Column(task.ColumnDone)) != 0 {
		t.Errorf("done should be empty")
	}
}

func TestProjectPreservesEveryTask(t *testing.T) {
	tasks := []task.Task{
		mkTask("a", task.ColumnNow, task.PriorityCritical),
		mkTask("b", task.ColumnNext, task.PriorityHigh),
		mkTask("c", task.ColumnLater, task.PriorityNormal),
		mkTask("d", task.ColumnBacklog, task.PriorityHigh),
		mkTask("e", task.ColumnDone, task.PriorityNormal),
	}

	b := Project(tasks, Options{SortByPriority: true})

	seen := map[string]int{}
	total := 0
	for _, c := range task.Columns() {
		for _, got := range b.Column(c) {
			seen[got.ID]++
			total++
		}
	}
	if total != len(tasks) {
		t.Fatalf("projection has %d tasks, input had %d", total, len(tasks))
	}
	for _, in := range tasks {
		if seen[in.ID] != 1 {
			t.Errorf("task %q appears %d times, want 1", in.Title, seen[in.ID])
		}
	}
}

func TestProjectSortByPriorityIsStable(t *testing.T) {
	tasks := []task.Task{
		mkTask("first P2", task.ColumnNow, task.PriorityNormal),
		mkTask("first P0", task.ColumnNow, task.PriorityCritical),
		mkTask("second P2", task.ColumnNow, task.PriorityNormal),
		mkTask("first P1", task.ColumnNow, task.PriorityHigh),
	}

	b := Project(tasks, Options{SortByPriority: true})
	got := b.Column(task.ColumnNow)

	wantTitles := []string{"first P0", "first P1", "first P2", "second P2"}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 30, 0, 0, time.Local)
	today := now.Add(-20 * time.Minute)
	yesterday := now.Add(-40 * time.Minute)

	done1 := mkTask("done today", task.ColumnDone, task.PriorityHigh)
	done1.Completed = true
	done1.CompletedAt = &today

	done2 := mkTask("done yesterday", task.ColumnDone, task.PriorityHigh)
	done2.Completed = true
	done2.CompletedAt = &yesterday

	open := mkTask("open", task.ColumnNow, task.PriorityHigh)

	stats := ComputeStats([]task.Task{done1, done2, open}, now)
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1: calendar day, not a 24h window", stats.CompletedToday)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats.Total != 0 || stats.Completed != 0 || stats.CompletedToday != 0 {
		t.Errorf("empty input should produce zero stats: %+v", stats)
	}
}
