// Package task implements the board's task model and its persistent store.
//
// Tasks live in a JSON snapshot under the user's state directory. The
// store is a constructor-injected object: it loads the snapshot once at
// open, flushes after every mutation, and notifies subscribers so
// derived views can re-project. Persistence is best-effort: a failed
// read falls back to an empty board and failed writes are only logged.
package task

import internalstrings "github.com/amonks/focusstudio/internal/strings"

// Column is one of the five fixed workflow stages a task can occupy.
type Column string

const (
	// ColumnNow holds the tasks being worked on right now.
	ColumnNow Column = "now"

	// ColumnNext holds the tasks queued up next.
	ColumnNext Column = "next"

	// ColumnLater holds tasks deferred past the current queue.
	ColumnLater Column = "later"

	// ColumnBacklog holds unscheduled tasks.
	ColumnBacklog Column = "backlog"

	// ColumnDone holds finished tasks.
	ColumnDone Column = "done"
)

// Columns returns the five columns in board order.
func Columns() []Column {
	return []Column{ColumnNow, ColumnNext, ColumnLater, ColumnBacklog, ColumnDone}
}

// IsValid returns true if the column is a known valid value.
func (c Column) IsValid() bool {
	for _, valid := range Columns() {
		if c == valid {
			return true
		}
	}
	return false
}

// ParseColumn normalizes user input into a column.
func ParseColumn(input string) (Column, bool) {
	column := Column(internalstrings.NormalizeLowerTrimSpace(input))
	return column, column.IsValid()
}

// Priority is the importance level of a task. The enumeration is
// ordered: P0 (critical) sorts before P1 (high) before P2 (normal).
type Priority string

const (
	// PriorityCritical is the highest priority.
	PriorityCritical Priority = "P0"

	// PriorityHigh is elevated priority (the quick-add default).
	PriorityHigh Priority = "P1"

	// PriorityNormal is the baseline priority.
	PriorityNormal Priority = "P2"
)

// Priorities returns the known priorities from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityNormal}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range Priorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Unknown priorities sort
// after the known ones: the command protocol stores them verbatim.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	default:
		return 3
	}
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
