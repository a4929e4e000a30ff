// Package logging builds the structured logger used by the catv CLI.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "catv"

// New returns a logger writing to w at the named level. Unknown level names
// fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          Prefix,
		Level:           lvl,
	})
}
