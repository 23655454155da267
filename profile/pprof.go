//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the supported profiling modes in sorted order.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// options translates c into pkg/profile options, or nil for an unknown
// mode.
func (c Config) options() []func(*profile.Profile) {
	fn, ok := mode[c.Mode]
	if !ok {
		return nil
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if c.Dir != "" {
		opts = append(opts, profile.ProfilePath(c.Dir))
	}

	if c.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return opts
}

func start(c Config) Stopper {
	opts := c.options()
	if opts == nil {
		return ignore{}
	}

	return profile.Start(opts...)
}
