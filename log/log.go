package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger writes diagnostics through a [slog.Logger] built from an immutable
// configuration. It is safe for concurrent use, and its zero value discards
// everything.
type Logger struct {
	*slog.Logger
	config
}

// Make returns a [Logger] writing to w (standard error if nil) with the
// default configuration modified by opts.
func Make(w io.Writer, opts ...Option) Logger {
	return makeLogger(makeConfig(w, opts...))
}

func makeLogger(c config) Logger {
	return Logger{Logger: slog.New(c.handler()), config: c}
}

// Wrap returns a copy of l with opts applied on top of its configuration.
// Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	return makeLogger(apply(l.config, opts...))
}

// With returns a copy of l that adds attrs to every diagnostic.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	l.Logger = slog.New(l.Handler().WithAttrs(attrs))

	return l
}

// Level returns the least severe level l writes.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the encoding of l.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelTrace, msg, attrs)
}

func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelTrace, msg, attrs)
}

func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelDebug, msg, attrs)
}

func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelDebug, msg, attrs)
}

func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelInfo, msg, attrs)
}

func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelInfo, msg, attrs)
}

func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelWarn, msg, attrs)
}

func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelWarn, msg, attrs)
}

func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelError, msg, attrs)
}

func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelError, msg, attrs)
}

// callerSkip drops runtime.Callers, [Logger.log] and the exported method or
// function that called it.
const callerSkip = 3

// log must be called directly by every exported logging method and function
// so that the caller is always [callerSkip] frames up.
func (l Logger) log(ctx context.Context, level Level, msg string, attrs []slog.Attr) {
	if l.Logger == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc [1]uintptr
	if l.caller {
		runtime.Callers(callerSkip, pc[:])
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
