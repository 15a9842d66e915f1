package internal

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Shared by every logger built with [NewLogger], so the level can change after
// the logger is installed.
var logLevel slog.LevelVar

// Returns the log level derived from the current output modes.
//
// Debug takes precedence over quiet.
func LogLevel() slog.Level {
	if IsDebug() {
		return slog.LevelDebug
	}
	if IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Creates a logger that writes to f, grouped under the program name.
//
// Output is human-readable text when f is a terminal and JSON otherwise.
// Verbose mode adds source locations. The level tracks [LogLevel] as of the
// most recent call.
func NewLogger(f *os.File) *slog.Logger {
	logLevel.Set(LogLevel())

	opts := &slog.HandlerOptions{
		Level:     &logLevel,
		AddSource: IsVerbose(),
	}

	var handler slog.Handler
	if term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(f, opts)
	} else {
		handler = slog.NewJSONHandler(f, opts)
	}

	return slog.New(handler).WithGroup(Name)
}
