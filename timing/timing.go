package timing

import "time"

// Point is a reference point in time.
//
// Implementations are value types where Now ignores its receiver and returns
// a new point, so the zero value of P can always be used to read the clock.
type Point[P any] interface {
	// Now returns a new reference point.
	Now() P
	// DurationSince returns the non-negative time elapsed from earlier to the
	// receiver.
	DurationSince(earlier P) time.Duration
}

// Start returns a fresh reference point read from the zero value of P.
func Start[P Point[P]]() P {
	var zero P

	return zero.Now()
}

// Since returns the time elapsed from start to a point read now.
func Since[P Point[P]](start P) time.Duration {
	return start.Now().DurationSince(start)
}

// Dummy is a [Point] that always reports zero elapsed time.
type Dummy struct{}

// Now returns a Dummy.
func (Dummy) Now() Dummy { return Dummy{} }

// DurationSince always returns zero.
func (Dummy) DurationSince(Dummy) time.Duration { return 0 }
