package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRun drives the commands end to end against a temporary configuration.
// It installs the process-wide log sink, so it runs once per test binary.
func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	ctx := context.Background()
	exit := func(code int) { t.Fatalf("exit(%d)", code) }

	confPath := filepath.Join(home, "fanlog.yaml")
	logPath := filepath.Join(home, "out.log")

	if err := Run(ctx, exit, "--config", confPath, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := Run(ctx, exit, "--config", confPath, "init"); err == nil {
		t.Fatal("second init without --force succeeded")
	}

	conf := "log_level: error\ntargets:\n  - kind: file\n    level: warn\n    path: " + logPath + "\n"
	if err := os.WriteFile(confPath, []byte(conf), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Run(ctx, exit, "--config", confPath, "check"); err != nil {
		t.Fatalf("check: %v", err)
	}

	err := Run(ctx, exit, "--config", confPath, "emit", "--level", "warn", "--source", "test", "disk", "low")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(string(b), "][WARN] (test) disk low\n") {
		t.Errorf("log file = %q", b)
	}
}
