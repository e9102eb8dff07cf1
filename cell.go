package springz

import "sync"

// Cell is an observable value holder. Set stores a value and notifies
// subscribers when it changed; Store writes silently; Subscribe registers
// a listener and returns a function that removes it.
//
// Listeners are invoked synchronously on the calling goroutine, outside
// the cell's lock, in subscription order.
type Cell[T comparable] struct {
	mu        sync.Mutex
	value     T
	listeners []cellListener[T]
	nextID    int
}

type cellListener[T comparable] struct {
	id int
	fn func(T)
}

// NewCell creates a Cell holding the given initial value.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores a value and notifies subscribers. Writing a value equal to
// the current one is a no-op: no notification is delivered.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	if v == c.value {
		c.mu.Unlock()
		return
	}
	c.value = v
	ls := make([]cellListener[T], len(c.listeners))
	copy(ls, c.listeners)
	c.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
}

// Store writes a value without notifying subscribers.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Subscribe registers fn to be called with each changed value. The
// returned function removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, cellListener[T]{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}
