package target

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

// Transmitter sends a buffer, blocking until all of it is sent. On failure
// it returns the number of bytes sent before the error.
type Transmitter interface {
	Puts(p []byte) (int, error)
}

// WaitTransmitter sends a buffer, blocking for at most timeout.
type WaitTransmitter interface {
	PutsWait(p []byte, timeout time.Duration) (int, error)
}

// TryTransmitter sends as much of a buffer as it can without blocking and
// returns the number of bytes accepted. Accepting fewer than len(p) bytes
// is not an error.
type TryTransmitter interface {
	PutsTry(p []byte) (int, error)
}

// Serial writes lines to a serial transmitter.
type Serial struct {
	dispatch.Filter
	guard

	port string
	send func(p []byte) (int, error)
	buf  []byte
}

// NewSerial returns a target driving a blocking transmitter.
func NewSerial(
	level dispatch.Level,
	ignore dispatch.IgnoreList,
	port string,
	tx Transmitter,
) *Serial {
	return &Serial{Filter: dispatch.NewFilter(level, ignore), port: port, send: tx.Puts}
}

// NewSerialWait returns a target driving a transmitter that gives up on a
// line after timeout.
func NewSerialWait(
	level dispatch.Level,
	ignore dispatch.IgnoreList,
	port string,
	tx WaitTransmitter,
	timeout time.Duration,
) *Serial {
	send := func(p []byte) (int, error) { return tx.PutsWait(p, timeout) }

	return &Serial{Filter: dispatch.NewFilter(level, ignore), port: port, send: send}
}

// NewSerialTry returns a target driving a non-blocking transmitter. Each
// line gets retries+1 attempts in total, each resuming where the previous
// one stopped; a line still incomplete after the last attempt fails with
// [pkg.ErrIncomplete].
func NewSerialTry(
	level dispatch.Level,
	ignore dispatch.IgnoreList,
	port string,
	tx TryTransmitter,
	retries uint,
) *Serial {
	send := func(p []byte) (int, error) {
		sent := 0

		for range retries + 1 {
			n, err := tx.PutsTry(p[sent:])
			sent += n

			if err != nil {
				return sent, err
			}

			if sent == len(p) {
				return sent, nil
			}
		}

		return sent, pkg.ErrIncomplete
	}

	return &Serial{Filter: dispatch.NewFilter(level, ignore), port: port, send: send}
}

// Port returns the name the target was built with.
func (s *Serial) Port() string { return s.port }

// Write implements [dispatch.Target].
func (s *Serial) Write(elapsed time.Duration, r dispatch.Record) error {
	var sent int

	err := s.locked(func() error {
		s.buf = append(dispatch.AppendRecord(s.buf[:0], elapsed, r), '\n')

		var err error
		sent, err = s.send(s.buf)

		return err
	})
	if err != nil {
		return &SerialError{Port: s.port, Op: "write", Sent: sent, Err: err}
	}

	return nil
}

// Flush implements [dispatch.Target]. Transmitters have nothing to flush.
func (s *Serial) Flush() error { return nil }

// WriterTransmitter adapts an [io.Writer], such as an open serial device, to
// both [Transmitter] and [TryTransmitter].
type WriterTransmitter struct {
	io.Writer
}

// Puts implements [Transmitter].
func (w WriterTransmitter) Puts(p []byte) (int, error) { return w.Write(p) }

// PutsTry implements [TryTransmitter]. Short writes without an error are
// reported as partial progress.
func (w WriterTransmitter) PutsTry(p []byte) (int, error) {
	n, err := w.Write(p)
	if err == io.ErrShortWrite {
		err = nil
	}

	return n, err
}

// DeadlineWriter is a writer that supports write deadlines, such as an
// [*os.File] opened on a terminal device.
type DeadlineWriter interface {
	io.Writer
	SetWriteDeadline(t time.Time) error
}

// DeadlineTransmitter adapts a [DeadlineWriter] to [WaitTransmitter]. A
// writer that cannot set deadlines, such as a regular file, blocks instead.
type DeadlineTransmitter struct {
	Writer DeadlineWriter
}

// PutsWait implements [WaitTransmitter].
func (d DeadlineTransmitter) PutsWait(p []byte, timeout time.Duration) (int, error) {
	err := d.Writer.SetWriteDeadline(time.Now().Add(timeout))
	if err != nil && !errors.Is(err, os.ErrNoDeadline) {
		return 0, err
	}

	if err == nil {
		defer func() { _ = d.Writer.SetWriteDeadline(time.Time{}) }()
	}

	return d.Writer.Write(p)
}
