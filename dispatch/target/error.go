package target

import (
	"fmt"
	"log/slog"
)

// ConsoleError is returned by [Console].
type ConsoleError struct {
	// Stream is "stdout", "stderr", or empty for other writers.
	Stream string
	Op     string
	Err    error
}

func (e *ConsoleError) Error() string {
	if e.Stream == "" {
		return fmt.Sprintf("console: %s failed: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("console %s: %s failed: %v", e.Stream, e.Op, e.Err)
}

func (e *ConsoleError) Unwrap() error { return e.Err }

// LogValue implements [slog.LogValuer].
func (e *ConsoleError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", "console"),
		slog.String("stream", e.Stream),
		slog.String("op", e.Op),
		slog.Any("error", e.Err),
	)
}

// FileError is returned by [File] and [Rotating].
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s: %s failed: %v", e.Path, e.Op, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LogValue implements [slog.LogValuer].
func (e *FileError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", "file"),
		slog.String("path", e.Path),
		slog.String("op", e.Op),
		slog.Any("error", e.Err),
	)
}

// SerialError is returned by [Serial].
type SerialError struct {
	Port string
	Op   string
	// Sent is the number of bytes of the line the transmitter accepted
	// before failing.
	Sent int
	Err  error
}

func (e *SerialError) Error() string {
	return fmt.Sprintf("serial %s: %s failed after %d bytes: %v", e.Port, e.Op, e.Sent, e.Err)
}

func (e *SerialError) Unwrap() error { return e.Err }

// LogValue implements [slog.LogValuer].
func (e *SerialError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", "serial"),
		slog.String("port", e.Port),
		slog.String("op", e.Op),
		slog.Int("sent", e.Sent),
		slog.Any("error", e.Err),
	)
}
