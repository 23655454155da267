package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(nil)
	defaultLog.Store(&l)
}

// Default returns the logger behind the package-level functions.
func Default() Logger {
	return *defaultLog.Load()
}

// Config replaces the package-level logger with a copy of it that has opts
// applied.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)
}

// With returns a copy of the package-level logger that adds attrs to every
// diagnostic.
func With(attrs ...slog.Attr) Logger {
	return Default().With(attrs...)
}

func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelTrace, msg, attrs)
}

func Trace(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelTrace, msg, attrs)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelDebug, msg, attrs)
}

func Debug(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelDebug, msg, attrs)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelInfo, msg, attrs)
}

func Info(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelInfo, msg, attrs)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelWarn, msg, attrs)
}

func Warn(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelWarn, msg, attrs)
}

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelError, msg, attrs)
}

// Error is how the dispatcher reports a failing target when no error handler
// is configured.
func Error(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelError, msg, attrs)
}
