package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fanlog/config"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "nested", config.FileName)

			if tt.exists {
				if err := os.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
					t.Fatal(err)
				}

				if err := os.WriteFile(confPath, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var cli struct {
				LogLevel  string `name:"log-level" default:"debug"`
				LogFormat string `name:"log-format" default:"json"`
			}

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			kctx, err := parser.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithContext(context.Background(), kctx)

			err = (&Init{Force: tt.force}).Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				return
			}

			conf, err := config.Load(ctx, confPath)
			if err != nil {
				t.Fatalf("generated config does not load: %v", err)
			}

			if conf.LogLevel != "debug" || conf.LogFormat != "json" {
				t.Errorf("log keys = %q, %q; want flag values", conf.LogLevel, conf.LogFormat)
			}
		})
	}
}
