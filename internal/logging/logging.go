// Package logging provides diagnostic logger for todo commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates logger writing to w. Only warnings and errors are shown
// unless debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "todo",
		ReportTimestamp: debug,
		Formatter:       log.TextFormatter,
	})
}
