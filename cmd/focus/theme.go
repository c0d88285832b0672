package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/focusstudio/internal/statefile"
	"github.com/amonks/focusstudio/internal/ui"
	"github.com/spf13/cobra"
)

// themeSnapshotFile holds the chosen theme in the state dir.
const themeSnapshotFile = "theme.json"

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the color theme (light, dark, comfort)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(currentTheme())
		return nil
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	if !ui.ValidTheme(name) {
		return fmt.Errorf("unknown theme %q (want light, dark, or comfort)", name)
	}

	dir, err := stateDir()
	if err != nil {
		return err
	}
	if err := statefile.New(filepath.Join(dir, themeSnapshotFile)).Save(name); err != nil {
		return err
	}

	fmt.Printf("Theme set to %s\n", name)
	return nil
}

// currentTheme resolves the active theme: the persisted choice wins,
// then the config file, then the built-in default. Resolution is best
// effort like the rest of the state layer.
func currentTheme() string {
	if dir, err := stateDir(); err == nil {
		var name string
		err := statefile.New(filepath.Join(dir, themeSnapshotFile)).Load(&name)
		if err == nil && ui.ValidTheme(name) {
			return name
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return ui.ThemeComfort
		}
	}

	if cfg, err := loadConfig(); err == nil && ui.ValidTheme(cfg.UI.Theme) {
		return cfg.UI.Theme
	}
	return ui.ThemeComfort
}

func currentStyles() ui.Styles {
	return ui.ThemeStyles(currentTheme())
}
