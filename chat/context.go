package chat

import (
	"strings"

	"github.com/amonks/focusstudio/task"
	"github.com/amonks/focusstudio/template"
)

// BuildContext renders the board and template list as the system
// context block sent with every chat turn. Tasks appear one per line
// as "id: title [priority] (status)"; templates list their name and
// seed titles.
func BuildContext(tasks []task.Task, templates []template.Template) string {
	var b strings.Builder

	b.WriteString("You are a planning assistant for a personal kanban board.\n")
	b.WriteString("Columns, in order: now, next, later, backlog, done.\n")
	b.WriteString("You may emit commands on their own lines to mutate the board:\n")
	b.WriteString("/move <taskId> <column>\n")
	b.WriteString("/priority <taskId> <priority>\n")
	b.WriteString("/add <title> | <priority> | <column>\n")

	b.WriteString("\nCurrent tasks:\n")
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
	}
	for _, t := range tasks {
		b.WriteString(FormatTaskLine(t))
		b.WriteString("\n")
	}

	b.WriteString("\nAvailable templates:\n")
	if len(templates) == 0 {
		b.WriteString("(none)\n")
	}
	for _, tpl := range templates {
		b.WriteString(tpl.Name)
		for _, seed := range tpl.Tasks {
			b.WriteString("\n  - ")
			b.WriteString(seed.Title)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTaskLine renders one task for the context block.
func FormatTaskLine(t task.Task) string {
	return t.ID + ": " + t.Title + " [" + string(t.Priority) + "] (" + string(t.Status) + ")"
}
