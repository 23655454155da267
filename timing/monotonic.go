//go:build !fanlog_minimal

package timing

import "time"

// Monotonic is a [Point] backed by the runtime's monotonic clock.
//
// The zero value is unset. Any duration measured from or to an unset point is
// zero, which allows a package-level logger to be declared before the
// program has a meaningful epoch and rebased once it does.
type Monotonic struct {
	t time.Time
}

// MonotonicAt returns a Monotonic holding t.
// If t carries no monotonic clock reading, durations fall back to wall-clock
// arithmetic.
func MonotonicAt(t time.Time) Monotonic { return Monotonic{t: t} }

// Now returns a Monotonic holding the current time.
func (Monotonic) Now() Monotonic { return Monotonic{t: time.Now()} }

// IsZero reports whether m is unset.
func (m Monotonic) IsZero() bool { return m.t.IsZero() }

// Time returns the time held by m.
func (m Monotonic) Time() time.Time { return m.t }

// DurationSince returns the time elapsed from earlier to m.
// It saturates at zero if m is earlier than earlier or if either is unset.
func (m Monotonic) DurationSince(earlier Monotonic) time.Duration {
	if m.t.IsZero() || earlier.t.IsZero() {
		return 0
	}

	d := m.t.Sub(earlier.t)
	if d < 0 {
		return 0
	}

	return d
}
