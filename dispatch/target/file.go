package target

//go:generate go tool stringer --linecomment --type Mode --output mode_string.go

import (
	"os"
	"strings"
	"time"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

// Mode selects how [OpenFile] treats an existing file.
type Mode uint8

const (
	ModeAppend   Mode = iota // append
	ModeTruncate             // truncate
)

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ModeAppend.String():
		return ModeAppend, nil
	case ModeTruncate.String():
		return ModeTruncate, nil
	}

	return 0, pkg.MakeErrorf("invalid file mode: %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// FileMode is the permission used when [OpenFile] creates a file.
const FileMode os.FileMode = 0o644

// File writes lines to a file opened once at construction.
type File struct {
	dispatch.Filter
	guard

	path string
	f    *os.File
}

// OpenFile opens or creates path and returns a target writing to it.
func OpenFile(
	level dispatch.Level,
	ignore dispatch.IgnoreList,
	path string,
	mode Mode,
) (*File, error) {
	flag := os.O_WRONLY | os.O_CREATE
	if mode == ModeTruncate {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flag, FileMode)
	if err != nil {
		return nil, &FileError{Path: path, Op: "open", Err: err}
	}

	return &File{Filter: dispatch.NewFilter(level, ignore), path: path, f: f}, nil
}

// Path returns the file's path.
func (f *File) Path() string { return f.path }

// Write implements [dispatch.Target].
func (f *File) Write(elapsed time.Duration, r dispatch.Record) error {
	return f.do("write", func() error {
		_, err := dispatch.WriteLine(f.f, elapsed, r)

		return err
	})
}

// Flush implements [dispatch.Target]. It commits the file to stable
// storage.
func (f *File) Flush() error {
	return f.do("flush", func() error { return f.f.Sync() })
}

// Close closes the file. Writes after Close fail with [pkg.ErrClosed].
func (f *File) Close() error {
	return f.do("close", func() error {
		err := f.f.Close()
		f.f = nil

		return err
	})
}

func (f *File) do(op string, fn func() error) error {
	err := f.locked(func() error {
		if f.f == nil {
			return pkg.ErrClosed
		}

		return fn()
	})
	if err != nil {
		return &FileError{Path: f.path, Op: op, Err: err}
	}

	return nil
}
