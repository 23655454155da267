package log

//go:generate go tool stringer --linecomment --type Level,Format --output config_string.go

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Level is the severity of a diagnostic message. It shares the numbering of
// [slog.Level] and adds [LevelTrace] below debug.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is used when no level is configured or a level fails to parse.
const DefaultLevel = LevelInfo

var levels = [...]Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels yields the name of every level from most to least verbose.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for l := range slices.Values(levels[:]) {
			if !yield(l.String()) {
				return
			}
		}
	}
}

// ParseLevel returns the level named by s, ignoring case and surrounding
// space. Anything [slog.Level.UnmarshalText] accepts is also accepted, so
// "warn+2" is valid. Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, LevelTrace.String()) {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// label is the level as printed in diagnostics: "TRACE" rather than
// slog's "DEBUG-4".
func (l Level) label() string {
	if l == LevelTrace {
		return "TRACE"
	}

	return slog.Level(l).String()
}
