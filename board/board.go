// Package board projects a flat task list onto kanban columns.
//
// The projection is a pure function of its input. It never mutates
// tasks and it never drops or duplicates one: every input task lands
// in exactly one column, keyed by its status.
package board

import (
	"sort"
	"time"

	"github.com/amonks/focusstudio/task"
)

// Options control how tasks are arranged within each column.
type Options struct {
	// SortByPriority re-sorts each column by priority rank. The sort
	// is stable, so tasks sharing a priority keep their input order.
	SortByPriority bool
}

// Board maps each column to its ordered tasks.
type Board struct {
	columns map[task.Column][]task.Task
}

// Project groups tasks by column, preserving input order within each
// column unless opts asks for a priority re-sort.
func Project(tasks []task.Task, opts Options) Board {
	columns := make(map[task.Column][]task.Task, len(task.Columns()))
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}

	if opts.SortByPriority {
		for _, group := range columns {
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].Priority.Rank() < group[j].Priority.Rank()
			})
		}
	}

	return Board{columns: columns}
}

// Column returns the tasks projected into c.
func (b Board) Column(c task.Column) []task.Task {
	return b.columns[c]
}

// Stats summarizes the projected board.
type Stats struct {
	// Total counts every task, completed or not.
	Total int

	// Completed counts tasks with the completed flag set.
	Completed int

	// CompletedToday counts tasks whose CompletedAt falls on the
	// current calendar date. A task completed late yesterday does not
	// count, even if fewer than 24 hours ago.
	CompletedToday int
}

// ComputeStats tallies board statistics as of now.
func ComputeStats(tasks []task.Task, now time.Time) Stats {
	var stats Stats
	stats.Total = len(tasks)
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		stats.Completed++
		if t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			stats.CompletedToday++
		}
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
