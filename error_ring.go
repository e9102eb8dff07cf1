package springz

import "sync"

// errorRing is a thread-safe ring buffer holding the most recent tuning
// rejections.
type errorRing struct {
	mu     sync.RWMutex
	errors []error
	size   int
	head   int
	count  int
}

// newErrorRing creates a ring buffer with the given capacity. A
// non-positive size disables the ring; a nil ring accepts and returns
// nothing.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{
		errors: make([]error, size),
		size:   size,
	}
}

// push adds an error, evicting the oldest when full.
func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[r.head] = err
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns the retained errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]error, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.errors[(start+i)%r.size]
	}
	return result
}
