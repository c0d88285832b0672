package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/timer"
	"github.com/spf13/cobra"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run a focus or break countdown",
	Long: `Run a focus or break countdown.

The countdown ticks once per second. When it reaches zero the timer
switches to the other mode and stops; run the command again to start
the next block. Ctrl-C stops early.`,
	Args: cobra.NoArgs,
	RunE: runTimer,
}

var (
	timerMinutes int
	timerBreak   bool
)

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.Flags().IntVarP(&timerMinutes, "minutes", "m", 0, "Focus block length (25 or 50; defaults from config)")
	timerCmd.Flags().BoolVarP(&timerBreak, "break", "b", false, "Run a break instead of a focus block")
}

func runTimer(cmd *cobra.Command, args []string) error {
	minutes := timerMinutes
	if minutes == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		minutes = cfg.Timer.FocusMinutes
	}

	t, err := timer.New(minutes)
	if err != nil {
		return err
	}
	if timerBreak {
		t.SwitchMode()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	styles := currentStyles()
	color := ui.ANSIEnabled()
	interactive := ui.IsInteractive()

	printTick := func(snap timer.Snapshot) {
		line := fmt.Sprintf("%s %s (%d%%)", snap.Mode, snap.Display(), snap.Progress)
		if color {
			if snap.Mode == timer.ModeFocus {
				line = styles.TimerFocus.Render(line)
			} else {
				line = styles.TimerBreak.Render(line)
			}
		}
		if interactive {
			fmt.Printf("\r\x1b[K%s", line)
		} else if snap.SecondsLeft%60 == 0 || !snap.Running {
			fmt.Println(line)
		}
	}

	start := t.Snapshot()
	fmt.Printf("Starting %d-minute %s block.\n", start.SecondsLeft/60, start.Mode)
	printTick(start)

	t.Start()
	if err := t.Run(ctx, printTick); err != nil {
		if interactive {
			fmt.Println()
		}
		fmt.Println("Stopped.")
		return nil
	}

	if interactive {
		fmt.Println()
	}
	final := t.Snapshot()
	fmt.Printf("Block complete. Up next: %s (%s).\n", final.Mode, final.Display())
	return nil
}
