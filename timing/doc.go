// Package timing abstracts the reference points used to compute the elapsed
// time printed on every dispatched log line.
//
// A [Point] produces fresh reference points with [Point.Now] and measures the
// elapsed time between two of them with [Point.DurationSince]. Nothing else in
// the module reads a clock directly, so environments without a monotonic
// clock can plug in their own source or use [Dummy].
//
// Two implementations are provided:
//
//   - [Monotonic] reads the runtime's monotonic clock. It is excluded from
//     builds using the fanlog_minimal build tag.
//   - [Dummy] always reports zero elapsed time. It is useful in clockless
//     environments and in tests that need deterministic output.
package timing
