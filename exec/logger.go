package exec

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogPrefix is the prefix of every log record emitted by the engine's default logger.
const LogPrefix = "glue"

// newLogger returns the default engine logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: LogPrefix,
		Level:  log.InfoLevel,
	})
}

// NewLogger returns a logger configured like the engine's default one, at the
// given level. It is intended for callers that want engine debug events.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	l := newLogger(w)
	l.SetLevel(level)
	return l
}
