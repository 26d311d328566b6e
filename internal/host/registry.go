package host

import (
	"sync"
	"weak"
)

// The current-host registry holds a non-owning reference to the most
// recently initialized coordinator for cross-cutting call sites that
// cannot be handed one explicitly. It must never extend the
// coordinator's lifetime, so the reference is weak; lookups are
// best-effort and may come from any goroutine.
var (
	currentMu sync.RWMutex
	current   weak.Pointer[Coordinator]
)

// setCurrent publishes c as the current host coordinator. Called from
// initialize.
func setCurrent(c *Coordinator) {
	currentMu.Lock()
	current = weak.Make(c)
	currentMu.Unlock()
}

// Current returns the most recently initialized coordinator, or nil
// when none was initialized yet or the instance has already been
// collected. Callers must tolerate nil at any time.
func Current() *Coordinator {
	currentMu.RLock()
	p := current
	currentMu.RUnlock()
	return p.Value()
}

// SwipeToChangeVideoEnabled is the static query surface for external
// call sites: a pure read of the current coordinator's bound
// swipe-to-change-video flag, false when no live coordinator exists.
func SwipeToChangeVideoEnabled() bool {
	return Current().SwipeToChangeVideoEnabled()
}
