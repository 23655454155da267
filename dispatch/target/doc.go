// Package target provides the standard [dispatch.Target] backends.
//
// [Console] writes to stdout, stderr or any writer. [File] appends to or
// truncates a file opened once at construction. [Rotating] writes through a
// size- and age-rotated file. [Serial] drives a serial transmitter in
// blocking, timed or non-blocking mode.
//
// Every backend serializes access to its sink with its own lock, formats
// lines with [dispatch.WriteLine], and reports failures with its own error
// type that unwraps to the native error. A panic raised by a sink while the
// lock is held poisons the target: that call and every later one fail with
// an error wrapping [pkg.ErrPoisoned].
package target
