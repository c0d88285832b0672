package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amonks/focusstudio/chat"
	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/task"
	"github.com/spf13/cobra"
)

const chatWrapWidth = 80

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Talk to the planning assistant",
	Long: `Talk to the planning assistant.

The assistant sees the current board and templates, and can mutate
the board through commands embedded in its replies. With a message
argument the command runs one turn and exits; without one it starts
an interactive session.`,
	RunE: runChat,
}

// subtasks
var subtasksCmd = &cobra.Command{
	Use:   "subtasks <id>",
	Short: "Suggest subtasks for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubtasks,
}

var subtasksAdd bool

// summarize
var summarizeCmd = &cobra.Command{
	Use:   "summarize <id>",
	Short: "Summarize a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

func init() {
	rootCmd.AddCommand(chatCmd, subtasksCmd, summarizeCmd)
	subtasksCmd.Flags().BoolVar(&subtasksAdd, "add", false, "Add the suggestions to the backlog")
}

func newChatClient() (*chat.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return chat.NewClient(chat.Options{
		BaseURL: cfg.Chat.BaseURL,
		APIKey:  cfg.ResolveAPIKey(),
		Model:   cfg.Chat.Model,
	}), nil
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := newChatClient()
	if err != nil {
		return err
	}
	tasks, err := openTaskStore()
	if err != nil {
		return err
	}
	templates, err := openTemplateStore()
	if err != nil {
		return err
	}

	orchestrator := chat.NewOrchestrator(client, tasks, templates)

	if len(args) > 0 {
		reply := orchestrator.Send(cmd.Context(), strings.Join(args, " "), nil)
		fmt.Println(ui.ReflowParagraphs(reply, chatWrapWidth))
		return nil
	}

	fmt.Println(chat.Greeting)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		// Stream tokens as they arrive. If stripping commands changed
		// the text, print the cleaned reply afterwards.
		var raw strings.Builder
		reply := orchestrator.Send(cmd.Context(), input, func(delta string) {
			raw.WriteString(delta)
			fmt.Print(delta)
		})
		if raw.Len() > 0 {
			fmt.Println()
		}
		if reply != raw.String() {
			fmt.Println(ui.ReflowParagraphs(reply, chatWrapWidth))
		}
	}
}

func runSubtasks(cmd *cobra.Command, args []string) error {
	client, err := newChatClient()
	if err != nil {
		return err
	}
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	parent, ok := store.Get(args[0])
	if !ok {
		return task.ErrTaskNotFound
	}

	suggestions := chat.GenerateSubtasks(cmd.Context(), client, parent)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}

	now := time.Now()
	for i, title := range suggestions {
		if subtasksAdd {
			created := task.New(title, now.Add(time.Duration(i)*time.Nanosecond), task.CreateOptions{
				Priority: parent.Priority,
				Status:   task.ColumnBacklog,
				Tags:     parent.Tags,
			})
			if err := store.Add(created); err != nil {
				return err
			}
			fmt.Printf("Added %s: %s\n", created.ID, created.Title)
		} else {
			fmt.Printf("- %s\n", title)
		}
	}
	return nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	client, err := newChatClient()
	if err != nil {
		return err
	}
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	found, ok := store.Get(args[0])
	if !ok {
		return task.ErrTaskNotFound
	}

	fmt.Println(chat.SummarizeTask(cmd.Context(), client, found))
	return nil
}
