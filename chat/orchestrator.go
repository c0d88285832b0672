package chat

import (
	"context"
	"sync"

	"github.com/amonks/focusstudio/command"
	"github.com/amonks/focusstudio/task"
	"github.com/amonks/focusstudio/template"
	"github.com/rs/zerolog/log"
)

// Orchestrator runs the conversation. It keeps a linear message
// history, prefixes every request with a freshly built board context,
// and routes finished replies through the command interpreter so the
// raw command syntax never reaches the user.
type Orchestrator struct {
	client      *Client
	tasks       *task.Store
	templates   *template.Store
	interpreter *command.Interpreter

	mu      sync.Mutex
	history []Message
}

// NewOrchestrator wires the orchestrator to its stores. The task
// store backs both the context block and the interpreter's mutations.
func NewOrchestrator(client *Client, tasks *task.Store, templates *template.Store) *Orchestrator {
	return &Orchestrator{
		client:      client,
		tasks:       tasks,
		templates:   templates,
		interpreter: command.NewInterpreter(tasks),
		history: []Message{
			{Role: RoleAssistant, Content: Greeting},
		},
	}
}

// History returns a copy of the conversation so far.
func (o *Orchestrator) History() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Message, len(o.history))
	copy(out, o.history)
	return out
}

// Send runs one conversation turn. The assistant's reply streams
// through onDelta fragment by fragment; once the stream completes the
// full text is passed through the command interpreter and the
// stripped text is recorded in the history and returned.
//
// Any request, stream, or decode failure records and returns
// FailureMessage instead. The conversation stays usable for the next
// turn. Cancelling ctx aborts an in-flight stream the same way.
func (o *Orchestrator) Send(ctx context.Context, input string, onDelta func(string)) string {
	o.mu.Lock()
	o.history = append(o.history, Message{Role: RoleUser, Content: input})

	messages := make([]Message, 0, len(o.history)+1)
	messages = append(messages, Message{
		Role:    RoleSystem,
		Content: BuildContext(o.tasks.Tasks(), o.templates.Templates()),
	})
	messages = append(messages, o.history...)
	o.mu.Unlock()

	raw, err := o.client.Stream(ctx, messages, onDelta)
	if err != nil {
		log.Warn().Err(err).Msg("chat turn failed")
		o.record(FailureMessage)
		return FailureMessage
	}

	stripped := o.interpreter.Apply(raw)
	o.record(stripped)
	return stripped
}

func (o *Orchestrator) record(content string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.history = append(o.history, Message{Role: RoleAssistant, Content: content})
}
