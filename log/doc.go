// Package log provides the concurrency-safe diagnostics logger used by fanlog
// itself, based on [log/slog].
//
// Diagnostics are messages about the dispatcher rather than records routed
// through it: a target that failed to write, the level filter registered at
// installation, command-line progress. They go to standard error by default so
// they never interleave with lines dispatched to standard output.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("targets loaded", slog.Int("count", 3))
//	logger.Error("target failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error], ...) use a
// default logger that can be reconfigured with [Config].
//
// # Supported Levels
//
// The package supports five levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// level are discarded.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText].
package log
