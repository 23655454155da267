package log

import (
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Format selects how diagnostics are encoded.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is used when no format is configured or a format fails to
// parse.
const DefaultFormat = FormatJSON

var formats = [...]Format{FormatJSON, FormatText}

// Formats yields the name of every format, default first.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range slices.Values(formats[:]) {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat returns the format named by s, ignoring case and surrounding
// space. Unrecognized input yields [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)

	for f := range slices.Values(formats[:]) {
		if strings.EqualFold(s, f.String()) {
			return f
		}
	}

	return DefaultFormat
}

func (f Format) handler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch f {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatText:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.DiscardHandler
	}
}
