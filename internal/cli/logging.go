package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger returns a leveled logger writing to w, tagged with a fresh run
// id. An unparseable level falls back to warn.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "todo",
	})
	return logger.With("run", runID())
}

// runID returns a time-ordered id for correlating one invocation's log lines.
func runID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
