package chat

import (
	"context"
	"strings"

	"github.com/amonks/focusstudio/task"
	"github.com/rs/zerolog/log"
)

const helperTemperature = 0.2

// GenerateSubtasks asks the model to break a task into actionable
// steps, one per line. Failures degrade to an empty list; the caller
// treats suggestions as optional.
func GenerateSubtasks(ctx context.Context, client *Client, t task.Task) []string {
	prompt := "Break down the following task into actionable subtasks. Reply with each subtask on its own line.\n\n" +
		"Title: " + t.Title + "\nNotes: " + t.Notes

	reply, err := client.Complete(ctx, []Message{{Role: RoleUser, Content: prompt}}, helperTemperature, 0)
	if err != nil {
		log.Warn().Err(err).Msg("subtask generation failed")
		return nil
	}

	var subtasks []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-* ")
		if line != "" {
			subtasks = append(subtasks, line)
		}
	}
	return subtasks
}

// SummarizeTask asks the model for a short task summary, falling back
// to the task's title on any failure.
func SummarizeTask(ctx context.Context, client *Client, t task.Task) string {
	prompt := "Provide a short summary for the following task.\n\n" +
		"Title: " + t.Title + "\nNotes: " + t.Notes

	reply, err := client.Complete(ctx, []Message{{Role: RoleUser, Content: prompt}}, helperTemperature, 50)
	if err != nil {
		log.Warn().Err(err).Msg("task summary failed")
		return t.Title
	}
	if summary := strings.TrimSpace(reply); summary != "" {
		return summary
	}
	return t.Title
}
