package cli

import (
	"io"

	colorable "github.com/mattn/go-colorable"
	logging "github.com/op/go-logging"
)

// LogFormat is the format of colored log lines.
const LogFormat = `%{color}%{level:.4s} ▶ %{color:reset} %{message}`

// plainLogFormat is LogFormat without color escape sequences.
const plainLogFormat = `%{level:.4s} ▶ %{message}`

// Logger writes leveled messages of a single module.
// It writes notices and up to stderr until it is configured otherwise.
type Logger struct {
	*logging.Logger
}

// NewLogger returns a logger for the given module.
func NewLogger(module string) *Logger {
	l := &Logger{Logger: logging.MustGetLogger(module)}
	l.Configure(colorable.NewColorableStderr(), false, true)
	return l
}

// Configure sets the destination of the logger. Debug messages are only
// written when debug is true.
func (l *Logger) Configure(w io.Writer, debug, colored bool) {
	format := LogFormat
	if !colored {
		format = plainLogFormat
	}
	formatter := logging.MustStringFormatter(format)
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), formatter))
	if debug {
		backend.SetLevel(logging.DEBUG, l.Module)
	} else {
		backend.SetLevel(logging.INFO, l.Module)
	}
	l.SetBackend(backend)
	l.Debug("Loglevel set to debug")
}
