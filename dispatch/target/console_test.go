package target

import (
	"bufio"
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

var errWire = errors.New("wire cut")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWire }

type panicWriter struct{}

func (panicWriter) Write([]byte) (int, error) { panic("sink exploded") }

func TestConsoleWrite(t *testing.T) {
	var buf bytes.Buffer

	c := NewConsole(dispatch.LevelInfo, dispatch.IgnoreList{}, &buf)

	if err := c.Write(0, dispatch.NewRecord(dispatch.LevelInfo, "app", "one")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := c.Write(0, dispatch.NewRecord(dispatch.LevelTrace, "app", "two")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "[+000:00.0000][INFO] (app) one\n[+000:00.0000][TRACE] (app) two\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsoleError(t *testing.T) {
	c := NewConsole(dispatch.LevelInfo, dispatch.IgnoreList{}, failWriter{})

	err := c.Write(0, dispatch.NewRecord(dispatch.LevelInfo, "app", "x"))

	var ce *ConsoleError
	if !errors.As(err, &ce) || ce.Op != "write" {
		t.Fatalf("Write() error = %#v, want *ConsoleError", err)
	}

	if !errors.Is(err, errWire) {
		t.Errorf("error does not unwrap to the writer's error: %v", err)
	}

	if v := ce.LogValue(); v.Kind() != slog.KindGroup {
		t.Errorf("LogValue() kind = %v", v.Kind())
	}
}

func TestConsolePoisoned(t *testing.T) {
	c := NewConsole(dispatch.LevelInfo, dispatch.IgnoreList{}, panicWriter{})

	for i := range 2 {
		err := c.Write(0, dispatch.NewRecord(dispatch.LevelInfo, "app", "x"))
		if !errors.Is(err, pkg.ErrPoisoned) {
			t.Fatalf("write %d error = %v, want ErrPoisoned", i, err)
		}
	}

	if !c.Poisoned() {
		t.Error("Poisoned() = false after a sink panic")
	}

	if !strings.Contains(NewStderr(dispatch.LevelInfo, dispatch.IgnoreList{}).Stream(), "stderr") {
		t.Error("NewStderr stream name")
	}
}

func TestConsoleFlush(t *testing.T) {
	var buf bytes.Buffer

	w := bufio.NewWriter(&buf)
	c := NewConsole(dispatch.LevelInfo, dispatch.IgnoreList{}, w)

	if err := c.Write(0, dispatch.NewRecord(dispatch.LevelWarn, "a", "b")); err != nil {
		t.Fatal(err)
	}

	if buf.Len() != 0 {
		t.Fatalf("buffered writer flushed early")
	}

	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if buf.String() != "[+000:00.0000][WARN] (a) b\n" {
		t.Errorf("output = %q", buf.String())
	}

	if err := NewStdout(dispatch.LevelInfo, dispatch.IgnoreList{}).Flush(); err != nil {
		t.Errorf("stdout Flush() error = %v", err)
	}
}
