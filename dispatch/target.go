package dispatch

import "time"

// Target is one output destination.
type Target interface {
	// Level returns the most verbose level the target accepts.
	Level() Level
	// Ignore reports whether the target vetoes r. It is consulted before the
	// record is formatted.
	Ignore(r Record) bool
	// Write renders r and writes it. It must not consult Level or Ignore;
	// collections filter records before calling Write.
	Write(elapsed time.Duration, r Record) error
	// Flush forces buffered output to be durable.
	Flush() error
}

// Filter implements the Level and Ignore methods of [Target] from a threshold
// and an [IgnoreList]. Backends embed it.
type Filter struct {
	level  Level
	ignore IgnoreList
}

// NewFilter returns a filter accepting records at level or more severe whose
// source is not ignored by ignore.
func NewFilter(level Level, ignore IgnoreList) Filter {
	return Filter{level: level, ignore: ignore}
}

// Level returns the filter's threshold.
func (f Filter) Level() Level { return f.level }

// Ignore reports whether the source of r is ignored.
func (f Filter) Ignore(r Record) bool { return f.ignore.Ignore(r.Source) }

// IgnoreList returns the filter's ignore list.
func (f Filter) IgnoreList() IgnoreList { return f.ignore }

// writeTo dispatches r to t unless t's threshold or ignore list rejects it.
// A rejected record is a success.
func writeTo[T Target](t T, elapsed time.Duration, r Record) error {
	if !t.Level().Filter().Admits(r.Level) || t.Ignore(r) {
		return nil
	}

	return t.Write(elapsed, r)
}
