// Package rlog provides named, leveled loggers for the renderer and CLI,
// replacing the teacher's raw fmt.Printf-backed core.Logger with a proper
// op/go-logging backend.
package rlog

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level mirrors logging.Level so callers don't need to import op/go-logging
// directly.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logging surface every package here logs through.
// It has no Printf method, so it does not satisfy core.Logger itself;
// PrintfAdapter (below) wraps it where a plain core.Logger is needed.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

func init() {
	SetSink(os.Stderr)
}

// New creates a named logger; the name appears as the %{module} field.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output stream.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum level that reaches the sink, across every
// named logger.
func SetLevel(level Level) {
	var loggerLevel logging.Level
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}

// PrintfAdapter wraps a Logger so it satisfies core.Logger (Printf only),
// for collaborators that only need the minimal logging contract.
type PrintfAdapter struct {
	Logger Logger
}

func (a PrintfAdapter) Printf(format string, args ...interface{}) {
	a.Logger.Infof(format, args...)
}
