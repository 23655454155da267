package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fanlog/log"
)

// logFormat configures the logger format as a side effect of parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// Kong calls it while parsing --log-format, early enough to affect the
// format of parse errors.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}" help:"Set diagnostics log level."`
	Format     logFormat `default:"text"    enum:"json,text"       help:"Set diagnostics log format."`
	TimeLayout string    `default:"RFC3339"                        help:"Set timestamp format ('none' to omit)."`
	Caller     bool      `default:"false"                          help:"Include caller information." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	var levels []string
	for l := range log.Levels() {
		levels = append(levels, l)
	}

	return kong.Vars{"logLevelEnum": strings.Join(levels, ",")}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Diagnostics logging options"

	return group
}

// start applies every parsed logger flag and returns a function that logs
// the end of the run.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
	)

	return func() { log.DebugContext(ctx, "run finished") }
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing.
//
// logFormat and logLevel configure the logger as Kong decodes them, but the
// boolean caller flag does not pass through that interface.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		if !strings.HasPrefix(arg, "--log-") && !strings.HasPrefix(arg, "--no-log-") {
			continue
		}

		name, value, assigned := strings.Cut(arg, "=")

		// Non-boolean flags consume the next argument if not assigned.
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" && args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(next()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(next()))

		case "--log-caller", "--no-log-caller":
			v := true

			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = b
			}

			if name == "--no-log-caller" {
				v = !v
			}

			f.Caller = v
			log.Config(log.WithCaller(v))
		}
	}
}
