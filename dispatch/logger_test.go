package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/ardnew/fanlog/pkg"
	"github.com/ardnew/fanlog/timing"
)

// fixedPoint is a clock frozen at an offset.
type fixedPoint time.Duration

func (p fixedPoint) Now() fixedPoint { return p }

func (p fixedPoint) DurationSince(earlier fixedPoint) time.Duration {
	return time.Duration(p - earlier)
}

// laterPoint reports a fixed elapsed time from any start.
type laterPoint struct{ elapsed time.Duration }

func (p laterPoint) Now() laterPoint { return p }

func (p laterPoint) DurationSince(laterPoint) time.Duration { return p.elapsed }

type failure struct {
	slot int
	err  error
}

func collect(dst *[]failure) Option {
	return WithErrorHandler(func(slot int, err error) {
		*dst = append(*dst, failure{slot, err})
	})
}

func TestLoggerConsoleAndFile(t *testing.T) {
	console, file := newMem(LevelTrace), newMem(LevelError)

	l := NewLogger(NewTargets2(console, file), laterPoint{65250 * time.Millisecond})

	l.Log(NewRecord(LevelInfo, "app", "started"))

	if len(console.lines) != 1 || console.lines[0] != "[+001:05.0250][INFO] (app) started" {
		t.Errorf("console lines = %q", console.lines)
	}

	if len(file.lines) != 0 {
		t.Errorf("file received %q below its threshold", file.lines)
	}

	l.Log(NewRecord(LevelError, "app", "disk full"))

	if len(console.lines) != 2 || len(file.lines) != 1 {
		t.Errorf("lines = %d, %d; want 2, 1", len(console.lines), len(file.lines))
	}
}

func TestLoggerReportsEverySlot(t *testing.T) {
	var got []failure

	a, b, c := newMem(LevelInfo), newMem(LevelInfo), newMem(LevelInfo)
	a.err, c.err = errBroken, &slotError{name: "third"}

	l := NewLogger(NewTargets3(a, b, c), timing.Dummy{}, collect(&got))
	l.Log(NewRecord(LevelWarn, "x", "y"))

	if len(got) != 2 || got[0].slot != 0 || got[1].slot != 2 {
		t.Fatalf("failures = %+v, want slots 0 and 2", got)
	}

	if !errors.Is(got[0].err, errBroken) {
		t.Errorf("slot 0 error = %v", got[0].err)
	}

	if len(b.lines) != 1 || b.lines[0] != "[+000:00.0000][WARN] (x) y" {
		t.Errorf("healthy target lines = %q", b.lines)
	}

	got = got[:0]
	l.Flush()

	if len(got) != 2 {
		t.Errorf("Flush() reported %d failures, want 2", len(got))
	}
}

func TestLoggerEnabled(t *testing.T) {
	l := NewLogger(NewTargets2(newMem(LevelError), newMem(LevelError)), timing.Dummy{})

	if l.Enabled(LevelTrace) {
		t.Error("Enabled(TRACE) = true with every target at ERROR")
	}

	if !l.Enabled(LevelError) {
		t.Error("Enabled(ERROR) = false")
	}

	if l.MaxLevel() != LevelError.Filter() {
		t.Errorf("MaxLevel() = %v", l.MaxLevel())
	}
}

func TestLoggerLazyMessage(t *testing.T) {
	rendered := false
	arg := stringerFunc(func() string {
		rendered = true

		return "x"
	})

	ignored := newMem(LevelTrace, "noisy")
	l := NewLogger(NewTargets2(newMem(LevelError), ignored), timing.Dummy{})

	l.Log(Recordf(LevelDebug, "noisy.module", "%v", arg))

	if rendered {
		t.Error("message rendered for a record no target wrote")
	}

	l.Log(Recordf(LevelTrace, "app", "%v", arg))

	if !rendered || len(ignored.lines) != 1 {
		t.Errorf("lines = %q", ignored.lines)
	}
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }

func TestLoggerRebase(t *testing.T) {
	l := NewLogger(NewTargets1(newMem(LevelInfo)), fixedPoint(0))

	if err := l.Rebase(fixedPoint(5)); err != nil {
		t.Fatalf("first Rebase() error = %v", err)
	}

	if l.Start() != 5 {
		t.Errorf("Start() = %v, want 5", l.Start())
	}

	if err := l.Rebase(fixedPoint(6)); !errors.Is(err, pkg.ErrRebased) {
		t.Errorf("second Rebase() error = %v, want ErrRebased", err)
	}

	fresh := NewLogger(NewTargets1(newMem(LevelInfo)), fixedPoint(0))
	fresh.installed.Store(true)

	if err := fresh.Rebase(fixedPoint(1)); !errors.Is(err, pkg.ErrInstalled) {
		t.Errorf("Rebase() after install error = %v, want ErrInstalled", err)
	}
}

func TestLoggerDefaultHandler(t *testing.T) {
	l := NewLogger(NewTargets1(newMem(LevelInfo)), timing.Dummy{}, WithErrorHandler(nil), nil)
	if l.onError == nil {
		t.Fatal("nil handler was not replaced by the default")
	}
}
