package profile

import (
	"slices"
	"testing"
)

func TestDisabledConfig(t *testing.T) {
	// Zero and unknown configurations must be stoppable in every build.
	for _, c := range []Config{{}, {Mode: "bogus"}} {
		c.Start().Stop()
	}
}

func TestModesSorted(t *testing.T) {
	m := Modes()
	if !slices.IsSorted(m) {
		t.Errorf("Modes() = %v, not sorted", m)
	}
}
