//go:build pprof

package profile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCPUProfile(t *testing.T) {
	dir := t.TempDir()

	Config{Mode: "cpu", Dir: dir, Quiet: true}.Start().Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("profile not written: %v", err)
	}

	if !slices.Contains(Modes(), "heap") {
		t.Errorf("Modes() = %v, missing heap", Modes())
	}
}
