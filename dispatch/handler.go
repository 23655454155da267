package dispatch

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

// SourceKey is the attribute key a [Handler] reads a record's source from.
const SourceKey = "source"

// Handler is a [slog.Handler] that forwards records to a [Sink], so code
// written against log/slog can feed the dispatcher.
//
// A record's source is taken from its [SourceKey] attribute if present, then
// from the handler's group names joined with ".", and finally from the
// package of the calling function. Other attributes are appended to the
// message as key=value pairs. Groups name the source and do not qualify
// attribute keys.
type Handler struct {
	sink   Sink
	source string
	groups []string
	attrs  []byte
}

// NewHandler returns a handler forwarding to s. A nil s forwards to the
// process-wide sink.
func NewHandler(s Sink) *Handler {
	return &Handler{sink: s}
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.sink == nil {
		return Enabled(LevelOf(level))
	}

	return h.sink.Enabled(LevelOf(level))
}

// Handle implements [slog.Handler].
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	source := h.source
	msg := append([]byte(r.Message), h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == SourceKey && a.Value.Kind() == slog.KindString {
			source = a.Value.String()

			return true
		}

		msg = appendAttr(msg, a)

		return true
	})

	if source == "" {
		source = h.groupSource()
	}

	if source == "" {
		source = sourceOf(r.PC)
	}

	rec := NewRecord(LevelOf(r.Level), source, string(msg))

	if h.sink == nil {
		Log(rec)
	} else {
		h.sink.Log(rec)
	}

	return nil
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()

	for _, a := range attrs {
		if a.Key == SourceKey && a.Value.Kind() == slog.KindString {
			c.source = a.Value.String()

			continue
		}

		c.attrs = appendAttr(c.attrs, a)
	}

	return c
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := h.clone()
	c.groups = append(c.groups, name)

	return c
}

func (h *Handler) clone() *Handler {
	return &Handler{
		sink:   h.sink,
		source: h.source,
		groups: slices.Clip(h.groups),
		attrs:  slices.Clip(h.attrs),
	}
}

func (h *Handler) groupSource() string {
	return strings.Join(h.groups, ".")
}

func appendAttr(dst []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			if a.Key != "" {
				g.Key = a.Key + "." + g.Key
			}

			dst = appendAttr(dst, g)
		}

		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, a.Key...)
	dst = append(dst, '=')

	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.AppendQuote(dst, s)
	}

	return append(dst, s...)
}

// sourceOf returns the import path of the package containing pc, or "slog"
// if pc is unknown.
func sourceOf(pc uintptr) string {
	if pc == 0 {
		return "slog"
	}

	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" {
		return "slog"
	}

	return packageOf(frame.Function)
}

// packageOf strips the function and receiver from a fully qualified
// function name such as "example.com/a/b.(*T).M".
func packageOf(fn string) string {
	slash := strings.LastIndexByte(fn, '/') + 1
	if dot := strings.IndexByte(fn[slash:], '.'); dot >= 0 {
		return fn[:slash+dot]
	}

	return fn
}
