// Package logging wires the global debug logger.
//
// Terminal output stays reserved for command results; diagnostics go to
// a logfile under the state directory so persistence and network
// failures the UI swallows are still recoverable after the fact.
package logging

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at <stateDir>/debug.log.
// When the logfile cannot be opened, logging is disabled rather than
// surfaced: the application treats diagnostics as best-effort.
func Setup(stateDir string) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		log.Logger = zerolog.Nop()
		return
	}

	logFile, err := os.OpenFile(
		filepath.Join(stateDir, "debug.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		fs.FileMode(0o644),
	)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05", NoColor: true,
	})
}
