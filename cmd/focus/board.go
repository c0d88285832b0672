package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/focusstudio/board"
	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/task"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the kanban board",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

var (
	boardSort bool
	boardJSON bool
)

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolVarP(&boardSort, "sort", "s", false, "Sort each column by priority")
	boardCmd.Flags().BoolVar(&boardJSON, "json", false, "Output as JSON")
}

func runBoard(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	tasks := store.Tasks()
	projected := board.Project(tasks, board.Options{SortByPriority: boardSort})
	stats := board.ComputeStats(tasks, time.Now())

	if boardJSON {
		out := struct {
			Columns map[task.Column][]task.Task `json:"columns"`
			Stats   board.Stats                 `json:"stats"`
		}{Columns: map[task.Column][]task.Task{}, Stats: stats}
		for _, c := range task.Columns() {
			out.Columns[c] = projected.Column(c)
		}
		return encodeJSONToStdout(out)
	}

	fmt.Print(formatBoard(projected, stats, currentStyles(), ui.ANSIEnabled()))
	return nil
}

func formatBoard(projected board.Board, stats board.Stats, styles ui.Styles, color bool) string {
	var out strings.Builder

	for _, column := range task.Columns() {
		tasks := projected.Column(column)

		header := fmt.Sprintf("%s (%d)", strings.ToUpper(string(column)), len(tasks))
		if color {
			header = styles.ColumnTitle.Render(header)
		}
		out.WriteString(header)
		out.WriteString("\n")

		if len(tasks) == 0 {
			empty := "  (empty)"
			if color {
				empty = styles.Muted.Render(empty)
			}
			out.WriteString(empty)
			out.WriteString("\n")
		}
		for _, t := range tasks {
			line := fmt.Sprintf("  %s  %s  %s", t.ID, renderPriority(t.Priority, styles, color), ui.TruncateTableCell(t.Title))
			if t.Completed && color {
				line = styles.Done.Render(line)
			}
			out.WriteString(line)
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}

	out.WriteString(fmt.Sprintf("%d tasks, %d completed, %d completed today\n",
		stats.Total, stats.Completed, stats.CompletedToday))

	return out.String()
}
