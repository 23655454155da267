package dispatch

import (
	"errors"
	"time"
)

// memTarget records every line written to it.
type memTarget struct {
	Filter

	lines   []string
	err     error
	flushes int
}

func newMem(level Level, ignore ...string) *memTarget {
	return &memTarget{Filter: NewFilter(level, NewIgnoreList(ignore...))}
}

func (m *memTarget) Write(elapsed time.Duration, r Record) error {
	if m.err != nil {
		return m.err
	}

	m.lines = append(m.lines, string(AppendRecord(nil, elapsed, r)))

	return nil
}

func (m *memTarget) Flush() error {
	m.flushes++

	return m.err
}

// slotError is a backend error type distinct from anything else in the tests.
type slotError struct{ name string }

func (e *slotError) Error() string { return e.name + " failed" }

var errBroken = errors.New("broken pipe")
