// Package timer implements the focus/break countdown.
//
// The timer is a small state machine with two modes. It counts down
// one second per tick while running, and on hitting zero flips to the
// other mode, reloads the full duration, and stops until the user
// explicitly restarts. Nothing here is persisted; a new process gets
// a fresh timer.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amonks/focusstudio/internal/ui"
)

// Mode is the countdown phase.
type Mode string

const (
	// ModeFocus is the work phase.
	ModeFocus Mode = "focus"

	// ModeBreak is the rest phase.
	ModeBreak Mode = "break"
)

// Focus block lengths, in minutes. The break is derived: a 25 minute
// block earns 5, a 50 minute block earns 10.
const (
	ShortFocusMinutes = 25
	LongFocusMinutes  = 50
)

// ErrInvalidFocusMinutes is returned for focus lengths other than the
// two supported blocks.
var ErrInvalidFocusMinutes = fmt.Errorf("focus length must be %d or %d minutes", ShortFocusMinutes, LongFocusMinutes)

// Snapshot is a point-in-time copy of the timer's state.
type Snapshot struct {
	Mode         Mode
	Running      bool
	SecondsLeft  int
	FocusMinutes int

	// Progress is percent elapsed for the current mode, 0 to 100.
	Progress int
}

// Display renders the remaining time as MM:SS.
func (s Snapshot) Display() string {
	return ui.FormatClock(s.SecondsLeft)
}

// Timer is the countdown state machine. All methods are safe for
// concurrent use.
type Timer struct {
	mu           sync.Mutex
	mode         Mode
	running      bool
	secondsLeft  int
	focusMinutes int
}

// New builds a stopped focus-mode timer.
func New(focusMinutes int) (*Timer, error) {
	if focusMinutes != ShortFocusMinutes && focusMinutes != LongFocusMinutes {
		return nil, ErrInvalidFocusMinutes
	}
	t := &Timer{
		mode:         ModeFocus,
		focusMinutes: focusMinutes,
	}
	t.secondsLeft = t.totalSecondsLocked()
	return t, nil
}

func (t *Timer) breakMinutesLocked() int {
	if t.focusMinutes == LongFocusMinutes {
		return 10
	}
	return 5
}

func (t *Timer) totalSecondsLocked() int {
	if t.mode == ModeFocus {
		return t.focusMinutes * 60
	}
	return t.breakMinutesLocked() * 60
}

// Start begins or resumes the countdown.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = true
}

// Pause stops the countdown without resetting it.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Reset stops the countdown and restores the current mode's full
// duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.secondsLeft = t.totalSecondsLocked()
}

// SwitchMode flips between focus and break, reloading the new mode's
// full duration.
func (t *Timer) SwitchMode() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == ModeFocus {
		t.mode = ModeBreak
	} else {
		t.mode = ModeFocus
	}
	t.secondsLeft = t.totalSecondsLocked()
}

// SetFocusMinutes changes the focus block length and reloads the
// current mode's duration.
func (t *Timer) SetFocusMinutes(minutes int) error {
	if minutes != ShortFocusMinutes && minutes != LongFocusMinutes {
		return ErrInvalidFocusMinutes
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focusMinutes = minutes
	t.secondsLeft = t.totalSecondsLocked()
	return nil
}

// Tick advances the countdown by one second. It does nothing unless
// the timer is running. When the countdown reaches zero the timer
// flips mode, reloads the new duration, and stops; the user must
// restart explicitly.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	if t.secondsLeft > 0 {
		t.secondsLeft--
	}
	if t.secondsLeft == 0 {
		if t.mode == ModeFocus {
			t.mode = ModeBreak
		} else {
			t.mode = ModeFocus
		}
		t.secondsLeft = t.totalSecondsLocked()
		t.running = false
	}
}

// Snapshot returns a copy of the current state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := t.totalSecondsLocked()
	return Snapshot{
		Mode:         t.mode,
		Running:      t.running,
		SecondsLeft:  t.secondsLeft,
		FocusMinutes: t.focusMinutes,
		Progress:     100 - t.secondsLeft*100/total,
	}
}

// Run ticks the timer once per second until ctx is done, calling
// onTick with a snapshot after every tick. It returns when the
// context is cancelled or when a countdown completes.
func (t *Timer) Run(ctx context.Context, onTick func(Snapshot)) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.Tick()
			snap := t.Snapshot()
			if onTick != nil {
				onTick(snap)
			}
			if !snap.Running {
				return nil
			}
		}
	}
}
