package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/dispatch/target"
	"github.com/ardnew/fanlog/pkg"
)

// FileName is the base name of the configuration file in [pkg.ConfigDir].
const FileName = "config.yaml"

// Path returns the default configuration file path.
func Path() string { return filepath.Join(pkg.ConfigDir(), FileName) }

// Config is the decoded configuration file.
type Config struct {
	LogLevel  string   `yaml:"log_level,omitempty"`
	LogFormat string   `yaml:"log_format,omitempty"`
	Targets   []Target `yaml:"targets"`
}

// Target describes one backend. Fields that do not apply to its kind are
// ignored.
type Target struct {
	Kind   Kind           `yaml:"kind"`
	Level  dispatch.Level `yaml:"level"`
	Ignore []string       `yaml:"ignore,omitempty"`

	// IgnoreIf is an expression over level, level_name and source that
	// vetoes the records it is true for, such as
	// `source startsWith "net" && level >= DEBUG`.
	IgnoreIf string `yaml:"ignore_if,omitempty"`

	// Path is the log file for file and rotate targets, and the device for
	// serial targets.
	Path string      `yaml:"path,omitempty"`
	Mode target.Mode `yaml:"mode,omitempty"`

	MaxSizeMB  int  `yaml:"max_size_mb,omitempty"`
	MaxBackups int  `yaml:"max_backups,omitempty"`
	MaxAgeDays int  `yaml:"max_age_days,omitempty"`
	Compress   bool `yaml:"compress,omitempty"`

	// Retries is the number of extra non-blocking attempts a serial target
	// makes per line. TimeoutMS bounds each serial line write instead. With
	// neither set the serial target blocks.
	Retries   uint `yaml:"retries,omitempty"`
	TimeoutMS uint `yaml:"timeout_ms,omitempty"`
}

// Default returns the configuration written by "fanlog init": info and
// above to stdout, errors to a file in the cache directory.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Targets: []Target{
			{Kind: KindStdout, Level: dispatch.LevelInfo},
			{
				Kind:  KindFile,
				Level: dispatch.LevelError,
				Path:  filepath.Join(pkg.CacheDir(), pkg.Name+".log"),
				Mode:  target.ModeAppend,
			},
		},
	}
}

// Decode reads a configuration from r and validates it.
func Decode(ctx context.Context, r io.Reader) (Config, error) {
	var c Config

	err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).DecodeContext(ctx, &c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, pkg.ErrReadConfig.Wrap(err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and validates the configuration file at path.
func Load(ctx context.Context, path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pkg.ErrReadConfig.Wrap(err)
	}

	return Decode(ctx, bytes.NewReader(b))
}

// Encode writes c as YAML to w.
func (c Config) Encode(ctx context.Context, w io.Writer) error {
	b, err := yaml.MarshalContext(ctx, c, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(b)

	return err
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if len(c.Targets) == 0 {
		return pkg.ErrNoTargets
	}

	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
	}

	return nil
}

// Validate reports the first problem with t.
func (t Target) Validate() error {
	if err := t.Kind.check(); err != nil {
		return err
	}

	if !t.Level.Valid() {
		return pkg.ErrInvalidLevel.Wrapf("%s target", t.Kind)
	}

	if t.Kind.NeedsPath() && t.Path == "" {
		return pkg.ErrMissingPath.Wrapf("%s target", t.Kind)
	}

	if t.Kind == KindSerial && t.Retries > 0 && t.TimeoutMS > 0 {
		return pkg.ErrSerialMode.Wrapf("%s target", t.Path)
	}

	if _, err := compileIgnore(t.IgnoreIf); err != nil {
		return err
	}

	return nil
}
