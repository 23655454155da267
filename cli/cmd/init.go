package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fanlog/config"
	"github.com/ardnew/fanlog/log"
)

// defaultDirMode is the permission used for a created configuration
// directory.
const defaultDirMode os.FileMode = 0o700

// Init generates a default configuration file. The log_level and log_format
// keys take the current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath := configPathFrom(ctx)
	if confPath == "" {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), defaultDirMode); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	err = i.build(ctx).Encode(ctx, file)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// build returns the default configuration with the log flags' current
// values.
func (i *Init) build(ctx context.Context) config.Config {
	conf := config.Default()

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return conf
	}

	if v := flagString(ktx, "log-level"); v != "" {
		conf.LogLevel = v
	}

	if v := flagString(ktx, "log-format"); v != "" {
		conf.LogFormat = v
	}

	return conf
}

// flagString returns the string form of a parsed flag, or "" if the flag is
// not defined.
func flagString(ktx *kong.Context, name string) string {
	for _, flag := range ktx.Model.Flags {
		if flag.Name != name {
			continue
		}

		if v := ktx.FlagValue(flag); v != nil {
			return fmt.Sprint(v)
		}

		return ""
	}

	return ""
}
