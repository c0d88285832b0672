package task

import "time"

// Task represents a single unit of work on the board.
//
// The JSON field names match the template exchange format, so a board
// export can be re-imported unchanged.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial title + timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Notes provides additional context about the task.
	Notes string `json:"notes,omitempty"`

	// Priority is the importance level (P0, P1, P2).
	Priority Priority `json:"priority"`

	// Status is the column the task occupies.
	Status Column `json:"status"`

	// Estimate is the expected effort in focus blocks (0 when unset).
	Estimate int `json:"estimate,omitempty"`

	// Tags are free-text labels in display order.
	Tags []string `json:"tags,omitempty"`

	// Due is an optional due date in ISO form (YYYY-MM-DD).
	Due string `json:"due,omitempty"`

	// Completed marks the task finished.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is when the task completed (nil when not completed).
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Priority defaults to PriorityHigh when empty.
	Priority Priority

	// Status defaults to ColumnBacklog when empty.
	Status Column

	// Notes provides additional context.
	Notes string

	// Estimate is the expected effort in focus blocks.
	Estimate int

	// Tags are free-text labels.
	Tags []string

	// Due is an optional due date in ISO form.
	Due string
}

// New builds a task with a fresh ID and creation timestamp. Completion
// state always starts cleared, whatever seeded the task.
func New(title string, now time.Time, opts CreateOptions) Task {
	if opts.Priority == "" {
		opts.Priority = PriorityHigh
	}
	if opts.Status == "" {
		opts.Status = ColumnBacklog
	}

	return Task{
		ID:        GenerateID(title, now),
		Title:     title,
		Notes:     opts.Notes,
		Priority:  opts.Priority,
		Status:    opts.Status,
		Estimate:  opts.Estimate,
		Tags:      opts.Tags,
		Due:       opts.Due,
		Completed: false,
		CreatedAt: now,
	}
}
