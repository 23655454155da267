package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/fanlog/config"
	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/log"
)

// Emit dispatches a message, or each line of its inputs, through the
// configured targets.
type Emit struct {
	Level   dispatch.Level `default:"info"   help:"Record level (trace, debug, info, warn, error)" short:"l"`
	Source  string         `default:"fanlog" help:"Record source tag"                              short:"t"`
	Input   []string       `default:"-"      help:"Input file(s) or '-' for stdin, read when no message is given" short:"i"`
	Message []string       `arg:""           help:"Message to emit"                                optional:""`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := configPathFrom(ctx)

	conf, err := config.Load(ctx, path)
	if err != nil {
		return ErrLoadConfig.With(slog.String("file", path)).Wrap(err)
	}

	targets, closeTargets, err := conf.Build()
	if err != nil {
		return ErrLoadConfig.With(slog.String("file", path)).Wrap(err)
	}

	defer func() {
		if cerr := closeTargets(); cerr != nil {
			log.WarnContext(ctx, "close targets", slog.Any("error", cerr))
		}
	}()

	if err := newLogger(targets).Init(); err != nil {
		return ErrInstall.Wrap(err)
	}

	defer dispatch.Flush()

	return e.emit(ctx, globalSink{}, os.Stdin)
}

// emit sends the message to sink, or each non-empty line of the inputs if
// there is no message.
func (e *Emit) emit(ctx context.Context, sink dispatch.Sink, stdin io.Reader) error {
	if len(e.Message) > 0 {
		sink.Log(dispatch.NewRecord(e.Level, e.Source, strings.Join(e.Message, " ")))

		return nil
	}

	in, err := openInputs(e.Input, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	var count int

	for src := range in.Sources() {
		n, err := e.emitLines(ctx, sink, src)
		count += n

		if err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "emitted records",
		slog.Int("count", count),
		slog.String("level", e.Level.String()),
		slog.String("source", e.Source),
	)

	return nil
}

// emitLines logs each non-blank line of r and returns how many it logged.
func (e *Emit) emitLines(ctx context.Context, sink dispatch.Sink, r io.Reader) (int, error) {
	scan := bufio.NewScanner(r)

	var count int

	for scan.Scan() {
		if ctx.Err() != nil {
			return count, context.Cause(ctx)
		}

		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		sink.Log(dispatch.NewRecord(e.Level, e.Source, line))
		count++
	}

	if err := scan.Err(); err != nil {
		return count, ErrReadInput.Wrap(err)
	}

	return count, nil
}

// globalSink forwards to the package-level dispatch functions.
type globalSink struct{}

func (globalSink) Enabled(level dispatch.Level) bool { return dispatch.Enabled(level) }
func (globalSink) Log(r dispatch.Record)             { dispatch.Log(r) }
func (globalSink) Flush()                            { dispatch.Flush() }
func (globalSink) MaxLevel() dispatch.LevelFilter    { return dispatch.MaxLevel() }
