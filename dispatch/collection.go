package dispatch

import "time"

// Collection is a fixed set of targets dispatched as one unit.
type Collection interface {
	// MaxLevel returns the most permissive threshold among the members, or
	// [LevelOff] if there are none.
	MaxLevel() LevelFilter
	// Len returns the number of members.
	Len() int
	// Write dispatches r to every member in order. Members whose threshold
	// or ignore list rejects r are skipped and reported as successes.
	Write(elapsed time.Duration, r Record) Results
	// Flush flushes every member in order.
	Flush() Results
}

// Slice is a [Collection] of any number of targets sharing one type.
//
// Slice[Target] holds targets of different types behind dynamic dispatch.
// A Slice must not be modified once it is in use.
type Slice[T Target] []T

// MaxLevel implements [Collection].
func (s Slice[T]) MaxLevel() LevelFilter {
	most := LevelOff

	for _, t := range s {
		if f := maxFilter(t.Level()); f > most {
			most = f
		}
	}

	return most
}

// Len implements [Collection].
func (s Slice[T]) Len() int { return len(s) }

// Write implements [Collection].
func (s Slice[T]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(len(s))

	for i, t := range s {
		res.set(i, writeTo(t, elapsed, r))
	}

	return res
}

// Flush implements [Collection].
func (s Slice[T]) Flush() Results {
	res := makeResults(len(s))

	for i, t := range s {
		res.set(i, t.Flush())
	}

	return res
}
