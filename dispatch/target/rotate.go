package target

import (
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

// Rotation bounds the files kept by a [Rotating] target. Zero fields use
// lumberjack's defaults: 100 MB files, every backup kept forever,
// uncompressed.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Rotating writes lines to a file that is rotated when it grows past its
// size limit. The file is opened on first write.
type Rotating struct {
	dispatch.Filter
	guard

	out    *lumberjack.Logger
	closed bool
}

// NewRotating returns a rotating file target writing to path.
func NewRotating(
	level dispatch.Level,
	ignore dispatch.IgnoreList,
	path string,
	rot Rotation,
) *Rotating {
	return &Rotating{
		Filter: dispatch.NewFilter(level, ignore),
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    rot.MaxSizeMB,
			MaxBackups: rot.MaxBackups,
			MaxAge:     rot.MaxAgeDays,
			Compress:   rot.Compress,
		},
	}
}

// Path returns the path of the active file.
func (t *Rotating) Path() string { return t.out.Filename }

// Write implements [dispatch.Target].
func (t *Rotating) Write(elapsed time.Duration, r dispatch.Record) error {
	return t.do("write", func() error {
		_, err := dispatch.WriteLine(t.out, elapsed, r)

		return err
	})
}

// Flush implements [dispatch.Target]. Lines are unbuffered, so it only
// reports a closed or poisoned target.
func (t *Rotating) Flush() error {
	return t.do("flush", func() error { return nil })
}

// Rotate closes the active file, renames it with a timestamp, and opens a
// new one.
func (t *Rotating) Rotate() error {
	return t.do("rotate", t.out.Rotate)
}

// Close closes the active file. Writes after Close fail with
// [pkg.ErrClosed].
func (t *Rotating) Close() error {
	return t.do("close", func() error {
		t.closed = true

		return t.out.Close()
	})
}

func (t *Rotating) do(op string, fn func() error) error {
	err := t.locked(func() error {
		if t.closed {
			return pkg.ErrClosed
		}

		return fn()
	})
	if err != nil {
		return &FileError{Path: t.out.Filename, Op: op, Err: err}
	}

	return nil
}
