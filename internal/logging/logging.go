// Package logging provides a thin leveled wrapper around the standard
// library's log.Logger for sailroute's driver layer. No third-party
// logging library appears anywhere in the retrieved example pack, so this
// stays on log.Logger rather than introducing a dependency the corpus
// never reaches for; see DESIGN.md.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level is a logging verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled, timestamped lines to an underlying writer,
// filtering out messages below its configured Level.
type Logger struct {
	level Level
	std   *log.Logger
}

// New constructs a Logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		level: level,
		std:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Default returns a Logger writing to stderr at LevelInfo, the
// driver's default destination when no explicit Logger is configured.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.std.Printf("[%s] %s", level, msg)
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs a warn-level message.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }
