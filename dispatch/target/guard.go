package target

import (
	"sync"

	"github.com/ardnew/fanlog/pkg"
)

// guard serializes access to a sink and records whether a panic escaped
// while it was held.
type guard struct {
	mu       sync.Mutex
	poisoned bool
}

// locked runs fn with the lock held. If fn panics, the panic is recovered
// and the guard stays poisoned.
func (g *guard) locked(fn func() error) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		return pkg.ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			err = pkg.ErrPoisoned.Wrapf("%v", r)
		}
	}()

	return fn()
}

// Poisoned reports whether a sink panic has disabled the target.
func (g *guard) Poisoned() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.poisoned
}
