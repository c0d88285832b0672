// Package chat talks to a streaming chat-completions endpoint and
// routes the replies through the board command protocol.
package chat

// Role identifies a message's author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Greeting opens every conversation.
const Greeting = "Hi! I can help plan your tasks and priorities. Ask me anything."

// FailureMessage replaces the assistant's reply when a request or
// stream fails. No retry is attempted; the next turn starts clean.
const FailureMessage = "Something went wrong."
