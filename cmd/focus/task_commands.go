package main

import (
	"fmt"
	"time"

	"github.com/amonks/focusstudio/internal/markdown"
	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/task"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var (
	addPriority string
	addColumn   string
	addNotes    string
	addEstimate int
	addTags     []string
	addDue      string
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listColumn   string
	listPriority string
	listJSON     bool
)

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <column>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

// done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle completion for one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Remove one or more tasks",
	Aliases: []string{"remove"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRm,
}

// show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var (
	updateTitle    string
	updateNotes    string
	updatePriority string
	updateColumn   string
	updateEstimate int
	updateDue      string
)

// clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every task from the board",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearForce bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, moveCmd, doneCmd, rmCmd, showCmd, updateCmd, clearCmd)
	addColumnFlagAliases(addCmd, listCmd, updateCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(task.PriorityHigh), "Priority (P0, P1, P2)")
	addCmd.Flags().StringVarP(&addColumn, "column", "c", string(task.ColumnNow), "Column (now, next, later, backlog, done)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes")
	addCmd.Flags().IntVar(&addEstimate, "estimate", 0, "Estimate in work units")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")

	listCmd.Flags().StringVarP(&listColumn, "column", "c", "", "Filter by column")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateNotes, "notes", "n", "", "New notes")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority (P0, P1, P2)")
	updateCmd.Flags().StringVarP(&updateColumn, "column", "c", "", "New column")
	updateCmd.Flags().IntVar(&updateEstimate, "estimate", 0, "New estimate")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date")

	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	column, ok := task.ParseColumn(addColumn)
	if !ok {
		return fmt.Errorf("%w: %q", task.ErrInvalidColumn, addColumn)
	}

	title := joinTitle(args)
	created := task.New(title, time.Now(), task.CreateOptions{
		Priority: task.Priority(addPriority),
		Status:   column,
		Notes:    addNotes,
		Estimate: addEstimate,
		Tags:     addTags,
		Due:      addDue,
	})
	if err := store.Add(created); err != nil {
		return err
	}

	fmt.Printf("Added %s: %s\n", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	tasks := store.Tasks()
	if listColumn != "" {
		column, ok := task.ParseColumn(listColumn)
		if !ok {
			return fmt.Errorf("%w: %q", task.ErrInvalidColumn, listColumn)
		}
		tasks = filterTasks(tasks, func(t task.Task) bool { return t.Status == column })
	}
	if listPriority != "" {
		tasks = filterTasks(tasks, func(t task.Task) bool { return string(t.Priority) == listPriority })
	}

	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks, time.Now())
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	column, ok := task.ParseColumn(args[1])
	if !ok {
		return fmt.Errorf("%w: %q", task.ErrInvalidColumn, args[1])
	}
	if err := store.Move(args[0], column); err != nil {
		return err
	}

	fmt.Printf("Moved %s to %s\n", args[0], column)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	for _, id := range args {
		if err := store.Toggle(id); err != nil {
			return err
		}
		toggled, _ := store.Get(id)
		if toggled.Completed {
			fmt.Printf("Completed %s: %s\n", toggled.ID, toggled.Title)
		} else {
			fmt.Printf("Reopened %s: %s\n", toggled.ID, toggled.Title)
		}
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	for _, id := range args {
		if err := store.Remove(id); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", id)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	found, ok := store.Get(args[0])
	if !ok {
		return task.ErrTaskNotFound
	}

	if showJSON {
		return encodeJSONToStdout(found)
	}

	printTaskDetail(found, time.Now())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	patch := task.Patch{}
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &updateNotes
	}
	if cmd.Flags().Changed("priority") {
		priority := task.Priority(updatePriority)
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("column") {
		column, ok := task.ParseColumn(updateColumn)
		if !ok {
			return fmt.Errorf("%w: %q", task.ErrInvalidColumn, updateColumn)
		}
		patch.Status = &column
	}
	if cmd.Flags().Changed("estimate") {
		patch.Estimate = &updateEstimate
	}
	if cmd.Flags().Changed("due") {
		patch.Due = &updateDue
	}

	if err := store.Update(args[0], patch); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", args[0])
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	if !clearForce && ui.IsInteractive() {
		fmt.Printf("Remove all %d tasks? [y/N] ", store.Len())
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store.Clear()
	fmt.Println("Cleared all tasks.")
	return nil
}

func printTaskDetail(t task.Task, now time.Time) {
	styles := currentStyles()

	fmt.Printf("%s  %s\n", styles.ColumnTitle.Render(t.Title), styles.Muted.Render(t.ID))
	fmt.Printf("priority: %s  column: %s\n", t.Priority, t.Status)
	if t.Estimate > 0 {
		fmt.Printf("estimate: %d\n", t.Estimate)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("tags: %v\n", t.Tags)
	}
	if t.Due != "" {
		fmt.Printf("due: %s\n", t.Due)
	}
	fmt.Printf("created: %s\n", ui.FormatTimeAgo(t.CreatedAt, now))
	if t.Completed && t.CompletedAt != nil {
		fmt.Printf("completed: %s\n", ui.FormatTimeAgo(*t.CompletedAt, now))
	}
	if t.Notes != "" {
		fmt.Println()
		fmt.Print(markdown.Render(80, t.Notes))
	}
}

func filterTasks(tasks []task.Task, keep func(task.Task) bool) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func joinTitle(args []string) string {
	title := args[0]
	for _, arg := range args[1:] {
		title += " " + arg
	}
	return title
}
