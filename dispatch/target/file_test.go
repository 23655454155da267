package target

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

func writeFile(t *testing.T, path string, mode Mode, msg string) {
	t.Helper()

	f, err := OpenFile(dispatch.LevelError, dispatch.IgnoreList{}, path, mode)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	if err := f.Write(time.Second, dispatch.NewRecord(dispatch.LevelError, "db", msg)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := f.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestFileModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{
			"append", ModeAppend,
			"[+000:01.0000][ERROR] (db) first\n[+000:01.0000][ERROR] (db) second\n",
		},
		{
			"truncate", ModeTruncate,
			"[+000:01.0000][ERROR] (db) second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "app.log")

			writeFile(t, path, ModeAppend, "first")
			writeFile(t, path, tt.mode, "second")

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			if string(b) != tt.want {
				t.Errorf("file = %q, want %q", b, tt.want)
			}
		})
	}
}

func TestFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	f, err := OpenFile(dispatch.LevelError, dispatch.IgnoreList{}, path, ModeAppend)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	err = f.Write(0, dispatch.NewRecord(dispatch.LevelError, "a", "b"))

	var fe *FileError
	if !errors.As(err, &fe) || fe.Path != path || !errors.Is(err, pkg.ErrClosed) {
		t.Errorf("Write() after Close() error = %v, want *FileError wrapping ErrClosed", err)
	}

	if !errors.Is(f.Close(), pkg.ErrClosed) {
		t.Error("second Close() did not report ErrClosed")
	}
}

func TestOpenFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.log")

	_, err := OpenFile(dispatch.LevelError, dispatch.IgnoreList{}, path, ModeAppend)

	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "open" || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenFile() error = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAppend, false},
		{"append", ModeAppend, false},
		{"TRUNCATE", ModeTruncate, false},
		{"overwrite", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}
