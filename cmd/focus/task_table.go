package main

import (
	"fmt"
	"time"

	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, currentStyles(), ui.ANSIEnabled(), now))
}

func formatTaskTable(tasks []task.Task, styles ui.Styles, color bool, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "COLUMN", "AGE", "TITLE"}, len(tasks))

	for _, t := range tasks {
		title := ui.TruncateTableCell(t.Title)
		if color {
			if t.Completed {
				title = styles.Done.Render(title)
			} else {
				title = styles.Card.Render(title)
			}
		}

		builder.AddRow([]string{
			t.ID,
			renderPriority(t.Priority, styles, color),
			string(t.Status),
			ui.FormatTimeAgo(t.CreatedAt, now),
			title,
		})
	}

	return builder.String()
}

func renderPriority(p task.Priority, styles ui.Styles, color bool) string {
	if !color {
		return string(p)
	}
	switch p {
	case task.PriorityCritical:
		return styles.PriorityP0.Render(string(p))
	case task.PriorityHigh:
		return styles.PriorityP1.Render(string(p))
	default:
		return styles.PriorityP2.Render(string(p))
	}
}
