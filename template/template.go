// Package template manages reusable task-set presets.
//
// A template holds seed tasks. Applying one never reuses the seed
// rows: each application materializes fresh copies with new ids and
// timestamps so two boards seeded from the same template stay
// independent.
package template

import (
	"time"

	"github.com/amonks/focusstudio/task"
	"github.com/google/uuid"
)

// Template is a named task-set preset.
type Template struct {
	// ID is the selection key. Names are display strings and may
	// collide; the id never does.
	ID string `json:"id"`

	// Name is the display string, not required to be unique.
	Name string `json:"name"`

	// Tasks are seed rows. Their ids and timestamps are placeholders,
	// regenerated on every application.
	Tasks []task.Task `json:"tasks"`

	// Columns records the column layout the template was built
	// against. Informational; the five-column board is fixed.
	Columns []task.Column `json:"columns,omitempty"`
}

// New builds a template with a fresh id.
func New(name string, tasks []task.Task) Template {
	return Template{
		ID:      uuid.NewString(),
		Name:    name,
		Tasks:   tasks,
		Columns: task.Columns(),
	}
}

// Materialize produces live tasks from the template's seed rows. Every
// produced task gets a fresh id and creation timestamp, and completion
// state is reset whatever the seed row said.
func (tpl Template) Materialize(now time.Time) []task.Task {
	out := make([]task.Task, 0, len(tpl.Tasks))
	for i, seed := range tpl.Tasks {
		// Offset the timestamp per row so same-titled seeds still
		// hash to distinct ids.
		out = append(out, task.New(seed.Title, now.Add(time.Duration(i)*time.Nanosecond), task.CreateOptions{
			Priority: seed.Priority,
			Status:   seed.Status,
			Notes:    seed.Notes,
			Estimate: seed.Estimate,
			Tags:     seed.Tags,
			Due:      seed.Due,
		}))
	}
	return out
}
