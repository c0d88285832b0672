package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme names persisted by the theme store.
const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	ThemeComfort = "comfort"
)

// ValidTheme reports whether name is a recognized theme.
func ValidTheme(name string) bool {
	switch name {
	case ThemeLight, ThemeDark, ThemeComfort:
		return true
	}
	return false
}

// Styles bundles the lipgloss styles for one theme.
type Styles struct {
	ColumnTitle lipgloss.Style
	Card        lipgloss.Style
	Muted       lipgloss.Style
	PriorityP0  lipgloss.Style
	PriorityP1  lipgloss.Style
	PriorityP2  lipgloss.Style
	Done        lipgloss.Style
	TimerFocus  lipgloss.Style
	TimerBreak  lipgloss.Style
}

// ThemeStyles returns the style set for the named theme. Unknown names
// fall back to the comfort theme.
func ThemeStyles(name string) Styles {
	switch name {
	case ThemeLight:
		return Styles{
			ColumnTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")),
			Card:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			PriorityP0:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
			PriorityP1:  lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
			PriorityP2:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
			TimerFocus:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			TimerBreak:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		}
	case ThemeDark:
		return Styles{
			ColumnTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			Card:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			PriorityP0:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			PriorityP1:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			PriorityP2:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
			TimerFocus:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
			TimerBreak:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		}
	default:
		// Comfort: low contrast.
		return Styles{
			ColumnTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("247")),
			Card:        lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			PriorityP0:  lipgloss.NewStyle().Foreground(lipgloss.Color("131")),
			PriorityP1:  lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
			PriorityP2:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
			Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243")),
			TimerFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
			TimerBreak:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		}
	}
}

// ANSIEnabled reports whether stdout should receive color output.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
