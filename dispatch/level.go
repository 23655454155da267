package dispatch

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/ardnew/fanlog/pkg"
)

// Level is the severity of a record.
//
// Lower values are more severe. As a target threshold, a Level admits every
// record whose level is at or below it: a target at [LevelInfo] accepts
// error, warn and info records.
type Level uint8

const (
	LevelError Level = iota + 1 // ERROR
	LevelWarn                   // WARN
	LevelInfo                   // INFO
	LevelDebug                  // DEBUG
	LevelTrace                  // TRACE
)

// Levels returns an iterator over all levels from most to least severe.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for l := LevelError; l <= LevelTrace; l++ {
			if !yield(l) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))

	for l := range Levels() {
		if l.String() == name {
			return l, nil
		}
	}

	return 0, pkg.ErrInvalidLevel.Wrapf("%q", s)
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

// Filter returns the filter admitting l and every more severe level.
func (l Level) Filter() LevelFilter {
	return LevelFilter(l)
}

// Slog returns the [slog.Level] closest to l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}

// LevelOf maps an [slog.Level] onto the closest Level. Anything below
// [slog.LevelDebug] is [LevelTrace].
func LevelOf(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, pkg.ErrInvalidLevel.Wrapf("%d", uint8(l))
	}

	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = v

	return nil
}

// LevelFilter is the most verbose level admitted by a filter, or [LevelOff].
type LevelFilter uint8

// LevelOff admits nothing.
const LevelOff LevelFilter = 0

// Admits reports whether a record at level passes the filter.
func (f LevelFilter) Admits(level Level) bool {
	return level.Valid() && LevelFilter(level) <= f
}

// Level returns the level at the filter's threshold, or false for [LevelOff].
func (f LevelFilter) Level() (Level, bool) {
	l := Level(f)

	return l, l.Valid()
}

func (f LevelFilter) String() string {
	if f == LevelOff {
		return "OFF"
	}

	return Level(f).String()
}

// maxFilter returns the most permissive threshold among levels.
func maxFilter(levels ...Level) LevelFilter {
	most := LevelOff

	for _, l := range levels {
		if f := l.Filter(); l.Valid() && f > most {
			most = f
		}
	}

	return most
}
