// Package command parses the board-mutation micro-language embedded
// in assistant text.
//
// Commands are line-prefixed: a line starting with "/" is consumed
// (applied if recognized, dropped if not) and every other line is
// passed through to the user. The protocol is deliberately naive
// about prose that happens to start a line with "/"; such lines are
// dropped rather than guessed at.
package command

import (
	"strings"
	"time"

	"github.com/amonks/focusstudio/task"
	"github.com/rs/zerolog/log"
)

// Store is the mutation surface the interpreter drives.
type Store interface {
	Move(id string, column task.Column) error
	SetPriority(id string, priority task.Priority) error
	Add(t task.Task) error
}

// Interpreter extracts and applies commands from free-form text.
type Interpreter struct {
	store Store
}

// NewInterpreter builds an interpreter over the given store.
func NewInterpreter(store Store) *Interpreter {
	return &Interpreter{store: store}
}

// Apply processes text line by line. Recognized commands mutate the
// store immediately, in line order, so later commands observe earlier
// ones' effects. It returns the text with every "/"-prefixed line
// removed, remaining lines joined by newlines and trimmed.
func (in *Interpreter) Apply(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "/") {
			kept = append(kept, line)
			continue
		}
		in.applyLine(trimmed)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func (in *Interpreter) applyLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "/move":
		if len(fields) != 3 {
			return
		}
		column, ok := task.ParseColumn(fields[2])
		if !ok {
			return
		}
		if err := in.store.Move(fields[1], column); err != nil {
			log.Debug().Str("id", fields[1]).Msg("move command named an unknown task")
		}

	case "/priority":
		if len(fields) != 3 {
			return
		}
		// The priority is relayed verbatim; unknown values are
		// stored and rank last when sorting.
		if err := in.store.SetPriority(fields[1], task.Priority(fields[2])); err != nil {
			log.Debug().Str("id", fields[1]).Msg("priority command named an unknown task")
		}

	case "/add":
		in.applyAdd(strings.TrimSpace(strings.TrimPrefix(line, "/add")))
	}
}

// applyAdd handles "/add <title> | <priority> | <column>". Priority
// and column are optional; they default to P1 and backlog, as do
// unparseable values.
func (in *Interpreter) applyAdd(args string) {
	if args == "" {
		return
	}

	parts := strings.Split(args, "|")
	title := strings.TrimSpace(parts[0])
	if title == "" {
		return
	}

	opts := task.CreateOptions{}
	if len(parts) > 1 {
		if p := task.Priority(strings.TrimSpace(parts[1])); p.IsValid() {
			opts.Priority = p
		}
	}
	if len(parts) > 2 {
		if c, ok := task.ParseColumn(parts[2]); ok {
			opts.Status = c
		}
	}

	if err := in.store.Add(task.New(title, time.Now(), opts)); err != nil {
		log.Debug().Err(err).Str("title", title).Msg("add command rejected")
	}
}
