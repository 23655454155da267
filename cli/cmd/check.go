package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/fanlog/config"
	"github.com/ardnew/fanlog/dispatch"
)

// Check validates the configuration file and describes its targets.
type Check struct{}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	path := configPathFrom(ctx)

	conf, err := config.Load(ctx, path)
	if err != nil {
		return ErrLoadConfig.With(slog.String("file", path)).Wrap(err)
	}

	w := stdout(ctx)

	levels := make([]dispatch.Level, 0, len(conf.Targets))

	for i, t := range conf.Targets {
		levels = append(levels, t.Level)

		fmt.Fprintf(w, "%d\t%s\t%s", i, t.Kind, t.Level)

		if t.Path != "" {
			fmt.Fprintf(w, "\t%s", t.Path)
		}

		if len(t.Ignore) > 0 {
			fmt.Fprintf(w, "\tignore=%s", strings.Join(t.Ignore, ","))
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "max level: %s\n", maxLevel(levels))

	return nil
}

// maxLevel computes the threshold a collection of targets at levels would
// report, without opening them.
func maxLevel(levels []dispatch.Level) dispatch.LevelFilter {
	s := make(dispatch.Slice[levelOnly], len(levels))
	for i, l := range levels {
		s[i] = levelOnly{dispatch.NewFilter(l, dispatch.IgnoreList{})}
	}

	return s.MaxLevel()
}

// levelOnly is a target that is never written.
type levelOnly struct{ dispatch.Filter }

func (levelOnly) Write(time.Duration, dispatch.Record) error { return nil }
func (levelOnly) Flush() error                               { return nil }
