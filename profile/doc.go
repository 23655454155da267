// Package profile wraps [github.com/pkg/profile] for the fanlog command.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof -o fanlog .
//	fanlog --pprof-mode=cpu emit --level=info "hello"
//	go tool pprof -http=: ~/.cache/fanlog/pprof/cpu.pprof
//
// Without the tag, [Modes] is empty and [Config.Start] does nothing. With
// it, the package also registers the [net/http/pprof] handlers.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Config selects a profiling mode and the directory profiles are written
// to. The zero Config disables profiling.
type Config struct {
	Mode  string
	Dir   string
	Quiet bool
}

// Stopper ends a profile and flushes it to disk.
type Stopper interface{ Stop() }

// Start begins profiling. The returned Stopper is always safe to call, even
// when profiling is disabled or the mode is unknown.
func (c Config) Start() Stopper {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
