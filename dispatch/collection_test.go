package dispatch

import (
	"errors"
	"testing"
	"time"
)

func TestTargetsFanOut(t *testing.T) {
	failure := &slotError{name: "second"}

	a, b, c := newMem(LevelTrace), newMem(LevelTrace), newMem(LevelTrace)
	b.err = failure

	ts := NewTargets3(a, b, c)
	res := ts.Write(0, NewRecord(LevelInfo, "app", "hello"))

	if res.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", res.Len())
	}

	if res.Err(0) != nil || res.Err(2) != nil {
		t.Errorf("healthy slots failed: %v, %v", res.Err(0), res.Err(2))
	}

	var se *slotError
	if !errors.As(res.Err(1), &se) || se != failure {
		t.Errorf("Err(1) = %v, want the second target's own error", res.Err(1))
	}

	if len(a.lines) != 1 || len(c.lines) != 1 {
		t.Errorf("targets after a failure were not written: %d, %d", len(a.lines), len(c.lines))
	}

	if res.OK() {
		t.Error("OK() = true with a failed slot")
	}

	var failed []int
	for i := range res.Failed() {
		failed = append(failed, i)
	}

	if len(failed) != 1 || failed[0] != 1 {
		t.Errorf("Failed() indices = %v, want [1]", failed)
	}

	if !errors.Is(res.Join(), failure) {
		t.Errorf("Join() = %v, want it to wrap the failure", res.Join())
	}
}

func TestTargetsSkipIsSuccess(t *testing.T) {
	console := newMem(LevelTrace)
	file := newMem(LevelError)
	file.err = errBroken
	muted := newMem(LevelTrace, "hyper")

	ts := NewTargets3(console, file, muted)

	res := ts.Write(0, NewRecord(LevelInfo, "hyper::client", "connected"))
	if !res.OK() {
		t.Errorf("skipped targets reported failures: %v", res.Join())
	}

	if len(console.lines) != 1 || len(muted.lines) != 0 {
		t.Errorf("lines = %d, %d; want 1, 0", len(console.lines), len(muted.lines))
	}

	res = ts.Write(0, NewRecord(LevelError, "app", "fatal"))
	if !errors.Is(res.Err(1), errBroken) {
		t.Errorf("Err(1) = %v, want %v", res.Err(1), errBroken)
	}
}

func TestTargetsMaxLevel(t *testing.T) {
	ts := NewTargets2(newMem(LevelWarn), newMem(LevelInfo))
	if got := ts.MaxLevel(); got != LevelInfo.Filter() {
		t.Errorf("MaxLevel() = %v, want INFO", got)
	}

	if got := (Slice[Target]{}).MaxLevel(); got != LevelOff {
		t.Errorf("empty MaxLevel() = %v, want OFF", got)
	}
}

func TestTargetsFlush(t *testing.T) {
	a, b := newMem(LevelError), newMem(LevelError)
	b.err = errBroken

	res := NewTargets2(a, b).Flush()

	if a.flushes != 1 || b.flushes != 1 {
		t.Errorf("flushes = %d, %d; want 1, 1", a.flushes, b.flushes)
	}

	if res.Err(0) != nil || !errors.Is(res.Err(1), errBroken) {
		t.Errorf("Flush() results = %v, %v", res.Err(0), res.Err(1))
	}
}

func TestTargets8(t *testing.T) {
	m := make([]*memTarget, 8)
	for i := range m {
		m[i] = newMem(LevelDebug)
	}

	m[7].err = errBroken

	ts := NewTargets8(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7])
	res := ts.Write(time.Second, NewRecord(LevelDebug, "s", "m"))

	if ts.Len() != 8 || res.Len() != 8 {
		t.Fatalf("Len() = %d, %d; want 8", ts.Len(), res.Len())
	}

	for i := range 7 {
		if len(m[i].lines) != 1 {
			t.Errorf("target %d got %d lines", i, len(m[i].lines))
		}
	}

	if res.Err(7) == nil {
		t.Error("Err(7) = nil, want failure")
	}
}

func TestSliceSpill(t *testing.T) {
	s := make(Slice[Target], 11)
	for i := range s {
		m := newMem(LevelInfo)
		if i%5 == 4 {
			m.err = &slotError{name: "spill"}
		}

		s[i] = m
	}

	res := s.Write(0, NewRecord(LevelInfo, "s", "m"))
	if res.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", res.Len())
	}

	var failed []int
	for i := range res.Failed() {
		failed = append(failed, i)
	}

	if len(failed) != 2 || failed[0] != 4 || failed[1] != 9 {
		t.Errorf("Failed() indices = %v, want [4 9]", failed)
	}

	if res.Err(-1) != nil || res.Err(11) != nil {
		t.Error("Err() out of range returned an error")
	}
}

func TestTargetsWriteDoesNotAllocate(t *testing.T) {
	ts := NewTargets2(newMem(LevelError), newMem(LevelError))
	r := NewRecord(LevelInfo, "app", "skipped")

	allocs := testing.AllocsPerRun(100, func() {
		_ = ts.Write(0, r)
		_ = ts.Flush()
	})

	if allocs != 0 {
		t.Errorf("Write/Flush allocated %v times per run", allocs)
	}
}
