// Package logging provides a small leveled logger on top of the standard
// log package.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps a name such as "debug" or "WARN" to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "", "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
}

// Logger writes leveled, prefixed messages.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewFromEnv creates a stderr logger whose level comes from LOG_LEVEL.
// Unknown values fall back to INFO.
func NewFromEnv() *Logger {
	level, _ := ParseLevel(os.Getenv("LOG_LEVEL"))
	return New(os.Stderr, level)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// Level returns the configured level.
func (l *Logger) Level() Level { return l.level }

// SetLevel changes the level.
func (l *Logger) SetLevel(level Level) { l.level = level }

func (l *Logger) Error(format string, args ...interface{}) { l.logf(LevelError, "ERROR", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, "DEBUG", format, args...) }

func (l *Logger) logf(level Level, tag, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	l.out.Printf("["+tag+"] "+format, args...)
}
