package springz

import "sync"

// completions tracks one-shot completion callbacks keyed by the literal
// target value they were registered for.
//
// Registering a second callback under the same target silently replaces
// the first; the replaced callback is never invoked. On any settlement the
// entire mapping is cleared, so a callback registered for a target the
// spring never reached is silently discarded.
type completions struct {
	mu      sync.Mutex
	pending map[float64]func()
}

func newCompletions() *completions {
	return &completions{pending: make(map[float64]func())}
}

// put stores fn for target, replacing any existing entry.
func (c *completions) put(target float64, fn func()) {
	c.mu.Lock()
	c.pending[target] = fn
	c.mu.Unlock()
}

// take returns the callback registered for target, if any, and clears
// every pending entry.
func (c *completions) take(target float64) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn := c.pending[target]
	c.pending = make(map[float64]func())
	return fn
}
