package dispatch

import (
	"sync/atomic"

	"github.com/ardnew/fanlog/pkg"
)

// Sink is the process-wide destination of the package-level functions.
// [*Logger] implements it.
type Sink interface {
	Enabled(level Level) bool
	Log(r Record)
	Flush()
	MaxLevel() LevelFilter
}

type sinkRef struct{ Sink }

var (
	maxLevel  atomic.Uint32
	installed atomic.Bool
	global    atomic.Pointer[sinkRef]
)

// Install makes s the process-wide sink. Only one sink can ever be
// installed; later calls fail with [pkg.ErrAlreadyInstalled].
//
// The global max level is set to s.MaxLevel() before the install is
// attempted, and remains set if it fails.
func Install(s Sink) error {
	level := s.MaxLevel()
	SetMaxLevel(level)

	if !installed.CompareAndSwap(false, true) {
		return pkg.ErrAlreadyInstalled
	}

	global.Store(&sinkRef{s})
	announce(level)

	return nil
}

// Installed reports whether a sink has been installed.
func Installed() bool { return installed.Load() }

// SetMaxLevel sets the global fast-path filter. Records the filter rejects
// are dropped by the package-level functions without reaching the sink.
func SetMaxLevel(f LevelFilter) { maxLevel.Store(uint32(f)) }

// MaxLevel returns the global fast-path filter.
func MaxLevel() LevelFilter { return LevelFilter(maxLevel.Load()) }

// Enabled reports whether a record at level would reach the installed sink.
func Enabled(level Level) bool {
	if !MaxLevel().Admits(level) {
		return false
	}

	s := global.Load()

	return s != nil && s.Enabled(level)
}

// Log sends r to the installed sink. It does nothing if no sink is
// installed or the global max level rejects r.
func Log(r Record) {
	if !MaxLevel().Admits(r.Level) {
		return
	}

	if s := global.Load(); s != nil {
		s.Log(r)
	}
}

// Logf is [Log] for a record built by [Recordf]. The message is not
// rendered unless some target accepts the record.
func Logf(level Level, source, format string, args ...any) {
	if !MaxLevel().Admits(level) {
		return
	}

	if s := global.Load(); s != nil {
		s.Log(Recordf(level, source, format, args...))
	}
}

// Flush flushes the installed sink, if any.
func Flush() {
	if s := global.Load(); s != nil {
		s.Flush()
	}
}
