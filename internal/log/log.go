package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

var logger = slog.Default()

// Options configures the logger.
type Options struct {
	// Verbose enables debug/info output; otherwise only warnings and errors.
	Verbose bool
	// JSONFormat uses JSON output instead of key=value text.
	JSONFormat bool
	// Stderr is the writer for log output (defaults to os.Stderr).
	Stderr io.Writer
}

// Init initializes the global logger with the given options.
func Init(opts Options) {
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.JSONFormat {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// SetOutput sends all levels to w as text (for testing).
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
}

// StartSession tags all subsequent log messages with a fresh session_id and
// returns it.
func StartSession() string {
	id := uuid.NewString()
	logger = slog.New(logger.Handler().WithAttrs([]slog.Attr{
		slog.String("session_id", id),
	}))
	slog.SetDefault(logger)
	return id
}
