package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(b, &entry); err != nil {
		t.Fatalf("invalid JSON diagnostic %q: %v", b, err)
	}

	return entry
}

func TestMake_Defaults(t *testing.T) {
	l := Make(new(bytes.Buffer))

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}
	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}
	if l.caller != DefaultCaller {
		t.Errorf("caller = %v, want %v", l.caller, DefaultCaller)
	}
}

func TestLogger_LevelThreshold(t *testing.T) {
	methods := map[Level]func(Logger, string, ...slog.Attr){
		LevelTrace: Logger.Trace,
		LevelDebug: Logger.Debug,
		LevelInfo:  Logger.Info,
		LevelWarn:  Logger.Warn,
		LevelError: Logger.Error,
	}

	for _, threshold := range levels {
		for level, method := range methods {
			var buf bytes.Buffer
			method(Make(&buf, WithLevel(threshold)), "target failed")

			if got, want := buf.Len() > 0, level >= threshold; got != want {
				t.Errorf("%v at threshold %v: written = %v, want %v", level, threshold, got, want)
			}
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace))

	l.Trace("log target failed", slog.Int("slot", 2), slog.Any("error", errors.New("broken pipe")))

	entry := decode(t, buf.Bytes())
	if entry["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", entry["level"])
	}
	if entry["msg"] != "log target failed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["slot"] != float64(2) {
		t.Errorf("slot = %v, want 2", entry["slot"])
	}
	if entry["error"] != "broken pipe" {
		t.Errorf("error = %v, want broken pipe", entry["error"])
	}
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithFormat(FormatText), WithTimeLayout("none")).
		Warn("serial retries exhausted", slog.String("port", "/dev/ttyS0"))

	want := "level=WARN msg=\"serial retries exhausted\" port=/dev/ttyS0\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true)).Info("log sink installed")

	src, ok := decode(t, buf.Bytes())["source"].(map[string]any)
	if !ok {
		t.Fatalf("no source in %s", buf.String())
	}
	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %q, want log_test.go", file)
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer
	base := Make(&first, WithLevel(LevelError))

	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))
	wrapped.Debug("wrapped")
	base.Debug("base")

	if first.Len() != 0 {
		t.Errorf("base logger wrote %q", first.String())
	}
	if !strings.Contains(second.String(), "wrapped") {
		t.Errorf("wrapped logger wrote %q", second.String())
	}
	if base.Level() != LevelError {
		t.Errorf("Wrap modified base level to %v", base.Level())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf).With(slog.String("target", "stderr")).Info("flushed")

	if got := decode(t, buf.Bytes())["target"]; got != "stderr" {
		t.Errorf("target = %v, want stderr", got)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Trace("dropped")
	l.Error("dropped")

	if l.With(slog.Int("slot", 0)).Logger != nil {
		t.Error("With on a zero Logger returned a usable Logger")
	}
	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Errorf("zero Logger reports %v/%v", l.Level(), l.Format())
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)

	l := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}))

	const n = 64

	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() { l.Error("log target failed", slog.Int("slot", i)) })
	}
	wg.Wait()

	if lines := strings.Count(buf.String(), "\n"); lines != n {
		t.Errorf("got %d lines, want %d", lines, n)
	}
}

func TestConfig_PackageLogger(t *testing.T) {
	original := Default()
	t.Cleanup(func() { defaultLog.Store(&original) })

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		fn    func(string, ...slog.Attr)
		level string
	}{
		{Trace, "TRACE"},
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warn, "WARN"},
		{Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.fn("diagnostic", slog.String("key", "value"))

			entry := decode(t, buf.Bytes())
			if entry["level"] != tt.level || entry["key"] != "value" {
				t.Errorf("got %v", entry)
			}
		})
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func BenchmarkLogger_Error(b *testing.B) {
	var buf bytes.Buffer
	l := Make(&buf)
	err := errors.New("broken pipe")

	for i := 0; b.Loop(); i++ {
		buf.Reset()
		l.Error("log target failed", slog.Int("slot", i), slog.Any("error", err))
	}
}
