// Package dispatch routes log records to a fixed set of heterogeneous output
// targets.
//
// # Targets
//
// A [Target] is one destination: it declares the most verbose [Level] it
// accepts, may veto records by source tag, and writes or flushes lines. Each
// backend returns its own error type; nothing in this package flattens those
// errors into a common one.
//
// # Collections
//
// A [Collection] lifts several targets into a single dispatch unit. The
// fixed-arity types [Targets1] through [Targets8] hold distinct concrete
// target types without boxing them in interfaces, and their Write and Flush
// methods do not allocate. [Slice] trades heterogeneity for a dynamic length;
// Slice[Target] uses dynamic dispatch.
//
// Every member of a collection is visited in declaration order on every call.
// A failing member never prevents dispatch to the next one. The outcome of
// each member is reported in its own slot of [Results].
//
// # Logger
//
// A [Logger] binds a collection to a [timing.Point] start reference. It
// computes the elapsed time once per record, dispatches, and hands every
// failed slot to its [ErrorHandler]; logging never returns an error to the
// caller.
//
// Building a Logger performs no I/O. Installing it as the process-wide sink
// with [Logger.Init] or [Logger.InitStatic] registers the global level filter
// and fails with [pkg.ErrAlreadyInstalled] if a sink is already installed:
//
//	console := target.NewStdout(dispatch.LevelInfo, dispatch.IgnoreList{})
//	file, err := target.OpenFile(dispatch.LevelError, dispatch.IgnoreList{},
//		"app.log", target.ModeAppend)
//	if err != nil {
//		return err
//	}
//
//	logger := dispatch.NewLogger(
//		dispatch.NewTargets2(console, file),
//		timing.Start[timing.Monotonic](),
//	)
//	if err := logger.Init(); err != nil {
//		return err
//	}
//
//	dispatch.Logf(dispatch.LevelWarn, "net", "timeout after %d attempts", 3)
//
// # Line Format
//
// Every provided backend writes the same line:
//
//	[+MMM:SS.ssss][LEVEL] (source) message
//
// See [AppendLine].
package dispatch
