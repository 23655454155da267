package dispatch

import (
	"sync/atomic"

	"github.com/ardnew/fanlog/pkg"
	"github.com/ardnew/fanlog/timing"
)

// ErrorHandler receives the error of a failed target along with its
// position in the collection.
type ErrorHandler func(slot int, err error)

// Option configures a [Logger].
type Option func(config) config

type config struct {
	onError ErrorHandler
}

// WithErrorHandler sets the function that receives target failures.
// A nil handler restores the default.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c config) config {
		c.onError = h

		return c
	}
}

// Logger dispatches records to a fixed collection of targets, stamping each
// with the time elapsed since a start point.
//
// The collection and thresholds never change once the Logger is constructed.
// Log and Flush are safe for concurrent use as long as every target is.
// Rebase is not, and must happen before the Logger is shared.
type Logger[C Collection, P timing.Point[P]] struct {
	targets C
	start   P
	onError ErrorHandler

	rebased   atomic.Bool
	installed atomic.Bool
}

// NewLogger returns a logger dispatching to targets with elapsed time
// measured from start. It performs no I/O.
func NewLogger[C Collection, P timing.Point[P]](
	targets C,
	start P,
	opts ...Option,
) *Logger[C, P] {
	var c config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	if c.onError == nil {
		c.onError = reportError
	}

	return &Logger[C, P]{targets: targets, start: start, onError: c.onError}
}

// Targets returns the logger's collection.
func (l *Logger[C, P]) Targets() C { return l.targets }

// Start returns the point elapsed time is measured from.
func (l *Logger[C, P]) Start() P { return l.start }

// Rebase replaces the start point. It succeeds at most once and only before
// the logger is installed.
func (l *Logger[C, P]) Rebase(start P) error {
	if l.installed.Load() {
		return pkg.ErrInstalled
	}

	if !l.rebased.CompareAndSwap(false, true) {
		return pkg.ErrRebased
	}

	l.start = start

	return nil
}

// MaxLevel returns the most permissive threshold among the targets.
func (l *Logger[C, P]) MaxLevel() LevelFilter { return l.targets.MaxLevel() }

// Enabled reports whether any target could accept a record at level.
func (l *Logger[C, P]) Enabled(level Level) bool {
	return l.targets.MaxLevel().Admits(level)
}

// Log dispatches r to every target and reports each failure to the error
// handler. It never returns an error to the caller.
func (l *Logger[C, P]) Log(r Record) {
	if !l.Enabled(r.Level) {
		return
	}

	elapsed := timing.Since(l.start)
	l.report(l.targets.Write(elapsed, r))
}

// Flush flushes every target and reports each failure to the error handler.
func (l *Logger[C, P]) Flush() {
	l.report(l.targets.Flush())
}

// Init installs a copy of l as the process-wide sink.
//
// The global max level is raised to l's before installation is attempted,
// so it changes even when Init fails with [pkg.ErrAlreadyInstalled].
// After a successful Init, l can no longer be rebased.
func (l *Logger[C, P]) Init() error {
	owned := &Logger[C, P]{targets: l.targets, start: l.start, onError: l.onError}
	owned.installed.Store(true)

	if err := Install(owned); err != nil {
		return err
	}

	l.installed.Store(true)

	return nil
}

// InitStatic installs l itself as the process-wide sink. The caller keeps l
// alive and must not rebase it concurrently.
//
// A failed InitStatic leaves l as it was: a logger that is already installed
// stays installed and cannot be rebased.
func (l *Logger[C, P]) InitStatic() error {
	claimed := l.installed.CompareAndSwap(false, true)

	if err := Install(l); err != nil {
		if claimed {
			l.installed.Store(false)
		}

		return err
	}

	return nil
}

func (l *Logger[C, P]) report(res Results) {
	for i, err := range res.Failed() {
		l.onError(i, err)
	}
}
