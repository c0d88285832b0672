// Package main implements the focus CLI, a kanban-style daily planner.
package main

import (
	"os"

	"github.com/amonks/focusstudio/internal/config"
	"github.com/amonks/focusstudio/internal/logging"
	"github.com/amonks/focusstudio/internal/paths"
	"github.com/amonks/focusstudio/task"
	"github.com/amonks/focusstudio/template"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus Studio - a kanban board, focus timer, and planning assistant",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := paths.DefaultStateDir()
		if err != nil {
			return err
		}
		logging.Setup(dir)
		return nil
	},
}

func stateDir() (string, error) {
	return paths.DefaultStateDir()
}

func openTaskStore() (*task.Store, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return task.Open(dir), nil
}

func openTemplateStore() (*template.Store, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return template.Open(dir), nil
}

func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}
