package log

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultCaller reports whether diagnostics carry the caller's source
// location unless configured otherwise.
const DefaultCaller = false

// Option modifies the configuration of a [Logger].
type Option func(config) config

// config is copied into every [Logger]; options never mutate a config that
// is already in use.
type config struct {
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

func makeConfig(w io.Writer, opts ...Option) config {
	return apply(config{}, append([]Option{WithDefaults(w)}, opts...)...)
}

// replaceAttr rewrites the top-level time and level attributes slog emits.
func (c config) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		t, ok := a.Value.Any().(time.Time)
		if !ok {
			return a
		}

		s := c.formatTime(t)
		if s == "" {
			return slog.Attr{}
		}

		return slog.String(a.Key, s)

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(a.Key, Level(l).label())
		}
	}

	return a
}

func (c config) handler() slog.Handler {
	if c.output == nil {
		c.output = io.Discard
	}

	if c.formatTime == nil {
		c.formatTime = timeFormatter(DefaultTimeLayout)
	}

	return c.format.handler(c.output, &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	})
}

// WithDefaults resets every setting: [DefaultLevel], [DefaultFormat],
// [DefaultTimeLayout] and [DefaultCaller], writing to w or to [os.Stderr]
// if w is nil.
func WithDefaults(w io.Writer) Option {
	if w == nil {
		w = os.Stderr
	}

	return func(config) config {
		return config{
			output:     w,
			formatTime: timeFormatter(DefaultTimeLayout),
			level:      DefaultLevel,
			format:     DefaultFormat,
			caller:     DefaultCaller,
		}
	}
}

// WithOutput sends diagnostics to w. A nil w discards them.
func WithOutput(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}

	return func(c config) config {
		c.output = w

		return c
	}
}

// WithLevel drops diagnostics less severe than level.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat selects the encoding of diagnostics.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout, either a layout name from
// package [time] such as "RFC3339Nano" or a literal layout for
// [time.Time.Format]. A blank layout or "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = timeFormatter(layout)

		return c
	}
}

// WithCaller adds the source location of the logging call to diagnostics.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}
