package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/focusstudio/board"
	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/task"
)

func TestFormatBoard(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		task.New("urgent", now, task.CreateOptions{Priority: task.PriorityCritical, Status: task.ColumnNow}),
		task.New("someday", now, task.CreateOptions{Status: task.ColumnBacklog}),
	}

	projected := board.Project(tasks, board.Options{})
	stats := board.ComputeStats(tasks, now)
	out := formatBoard(projected, stats, ui.ThemeStyles(ui.ThemeComfort), false)

	for _, want := range []string{"NOW (1)", "NEXT (0)", "LATER (0)", "BACKLOG (1)", "DONE (0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "urgent") || !strings.Contains(out, "someday") {
		t.Errorf("board output missing tasks:\n%s", out)
	}
	if !strings.Contains(out, "2 tasks, 0 completed, 0 completed today") {
		t.Errorf("board output missing stats:\n%s", out)
	}

	// Columns appear in workflow order.
	if strings.Index(out, "NOW") > strings.Index(out, "BACKLOG") {
		t.Error("columns out of order")
	}
}

func TestFormatBoardEmptyColumns(t *testing.T) {
	projected := board.Project(nil, board.Options{})
	out := formatBoard(projected, board.Stats{}, ui.ThemeStyles(ui.ThemeComfort), false)

	if got := strings.Count(out, "(empty)"); got != 5 {
		t.Errorf("empty board should mark all 5 columns empty, got %d:\n%s", got, out)
	}
}
