package target

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/timing"
)

func TestConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var out bytes.Buffer

	console := NewConsole(dispatch.LevelTrace, dispatch.NewIgnoreList("hyper"), &out)

	file, err := OpenFile(dispatch.LevelError, dispatch.IgnoreList{}, path, ModeAppend)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer file.Close()

	var failed []int

	l := dispatch.NewLogger(
		dispatch.NewTargets2(console, file),
		timing.Dummy{},
		dispatch.WithErrorHandler(func(slot int, _ error) { failed = append(failed, slot) }),
	)

	if l.MaxLevel() != dispatch.LevelTrace.Filter() {
		t.Errorf("MaxLevel() = %v, want TRACE", l.MaxLevel())
	}

	l.Log(dispatch.NewRecord(dispatch.LevelInfo, "app", "started"))
	l.Log(dispatch.NewRecord(dispatch.LevelError, "db", "connection lost"))
	l.Log(dispatch.NewRecord(dispatch.LevelDebug, "hyper::client", "polling"))
	l.Flush()

	if len(failed) != 0 {
		t.Fatalf("failed slots = %v", failed)
	}

	wantConsole := "[+000:00.0000][INFO] (app) started\n[+000:00.0000][ERROR] (db) connection lost\n"
	if out.String() != wantConsole {
		t.Errorf("console = %q, want %q", out.String(), wantConsole)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := "[+000:00.0000][ERROR] (db) connection lost\n"; string(b) != want {
		t.Errorf("file = %q, want %q", b, want)
	}

	if got := console.IgnoreList().Patterns(); !slices.Equal(got, []string{"hyper"}) {
		t.Errorf("IgnoreList().Patterns() = %q", got)
	}

	if file.IgnoreList().Ignore("hyper") {
		t.Error("empty ignore list ignores a source")
	}
}
