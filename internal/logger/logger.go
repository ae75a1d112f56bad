package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog with the package/file/function breadcrumbs used
// throughout the codebase. Values are cheap to copy; each scoping call
// returns a new Logger.
type Logger struct {
	handler *slog.Logger
	pkg     string
	file    string
	fn      string
}

func New(pkg string) Logger {
	return Logger{
		handler: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
		pkg: pkg,
	}
}

func (l Logger) File(file string) Logger {
	l.file = file
	return l
}

func (l Logger) Function(fn string) Logger {
	l.fn = fn
	return l
}

func (l Logger) scope() []any {
	args := []any{"package", l.pkg}
	if l.file != "" {
		args = append(args, "file", l.file)
	}
	if l.fn != "" {
		args = append(args, "function", l.fn)
	}
	return args
}

func (l Logger) Info(msg string, args ...any) {
	l.handler.Info(msg, append(l.scope(), args...)...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.handler.Warn(msg, append(l.scope(), args...)...)
}

// Er logs an error without returning it, for callers that swallow the
// failure.
func (l Logger) Er(msg string, err error, args ...any) {
	l.handler.Error(msg, append(append(l.scope(), "error", err), args...)...)
}

// ErMsg logs an error-level message with no underlying error value.
func (l Logger) ErMsg(msg string, args ...any) {
	l.handler.Error(msg, append(l.scope(), args...)...)
}

// Err logs and returns the wrapped error so call sites can
// `return log.Err(...)` in one line.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.Er(msg, err, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// ErrMsg logs and returns a new error built from msg alone.
func (l Logger) ErrMsg(msg string, args ...any) error {
	l.ErMsg(msg, args...)
	return fmt.Errorf("%s", msg)
}

// Error logs msg with structured args and returns it as an error.
func (l Logger) Error(msg string, args ...any) error {
	l.ErMsg(msg, args...)
	return fmt.Errorf("%s", msg)
}
