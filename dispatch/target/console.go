package target

import (
	"io"
	"os"
	"time"

	"github.com/ardnew/fanlog/dispatch"
)

// Console writes lines to a standard stream or any [io.Writer].
type Console struct {
	dispatch.Filter
	guard

	stream string
	w      io.Writer
}

// NewStdout returns a console target writing to [os.Stdout].
func NewStdout(level dispatch.Level, ignore dispatch.IgnoreList) *Console {
	return &Console{Filter: dispatch.NewFilter(level, ignore), stream: "stdout", w: os.Stdout}
}

// NewStderr returns a console target writing to [os.Stderr].
func NewStderr(level dispatch.Level, ignore dispatch.IgnoreList) *Console {
	return &Console{Filter: dispatch.NewFilter(level, ignore), stream: "stderr", w: os.Stderr}
}

// NewConsole returns a console target writing to w.
// If w has a Flush() error method, [Console.Flush] calls it.
func NewConsole(level dispatch.Level, ignore dispatch.IgnoreList, w io.Writer) *Console {
	return &Console{Filter: dispatch.NewFilter(level, ignore), w: w}
}

// Stream returns "stdout", "stderr", or "" for a console built by
// [NewConsole].
func (c *Console) Stream() string { return c.stream }

// Write implements [dispatch.Target].
func (c *Console) Write(elapsed time.Duration, r dispatch.Record) error {
	err := c.locked(func() error {
		_, err := dispatch.WriteLine(c.w, elapsed, r)

		return err
	})
	if err != nil {
		return &ConsoleError{Stream: c.stream, Op: "write", Err: err}
	}

	return nil
}

// Flush implements [dispatch.Target].
func (c *Console) Flush() error {
	f, ok := c.w.(interface{ Flush() error })
	if !ok {
		return nil
	}

	if err := c.locked(f.Flush); err != nil {
		return &ConsoleError{Stream: c.stream, Op: "flush", Err: err}
	}

	return nil
}
