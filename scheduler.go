package springz

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultFPS is the frame rate of the default TickScheduler.
const DefaultFPS = 60

// Scheduler delivers frame callbacks to a driving session.
//
// ScheduleNextFrame requests exactly one callback, invoked with a
// timestamp in milliseconds. The driver computes elapsed time from
// consecutive timestamps; a session keeps itself alive by re-requesting a
// frame from within the callback, so callbacks for one spring never
// overlap.
type Scheduler interface {
	ScheduleNextFrame(callback func(timestampMillis float64))
}

// TickScheduler delivers frames at a fixed rate using a clockz.Clock.
// Timestamps are milliseconds since the scheduler was created.
type TickScheduler struct {
	clock    clockz.Clock
	interval time.Duration
	epoch    time.Time
}

// NewTickScheduler creates a TickScheduler at the given frame rate on the
// real clock. A non-positive fps falls back to DefaultFPS.
func NewTickScheduler(fps int) *TickScheduler {
	return NewTickSchedulerWithClock(fps, clockz.RealClock)
}

// NewTickSchedulerWithClock creates a TickScheduler on a custom clock.
// Use this with clockz.FakeClock for deterministic frame-timing tests.
func NewTickSchedulerWithClock(fps int, clock clockz.Clock) *TickScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &TickScheduler{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		epoch:    clock.Now(),
	}
}

// ScheduleNextFrame arms a timer for one frame interval and invokes the
// callback with the clock's current timestamp when it fires.
func (s *TickScheduler) ScheduleNextFrame(callback func(float64)) {
	timer := s.clock.NewTimer(s.interval)
	go func() {
		<-timer.C()
		elapsed := s.clock.Now().Sub(s.epoch)
		callback(float64(elapsed) / float64(time.Millisecond))
	}()
}

// ManualScheduler queues frame requests and delivers them on demand.
// Use it for deterministic tests: each Advance moves the scheduler's
// timestamp forward and invokes the oldest pending callback on the
// calling goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     float64
	pending []func(float64)
}

// NewManualScheduler creates an empty ManualScheduler at timestamp zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleNextFrame queues the callback for a later Advance.
func (m *ManualScheduler) ScheduleNextFrame(callback func(float64)) {
	m.mu.Lock()
	m.pending = append(m.pending, callback)
	m.mu.Unlock()
}

// Advance moves the timestamp forward by elapsedMillis and delivers the
// oldest pending frame callback. It returns false if no frame is pending.
func (m *ManualScheduler) Advance(elapsedMillis float64) bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	callback := m.pending[0]
	m.pending = m.pending[1:]
	m.now += elapsedMillis
	now := m.now
	m.mu.Unlock()

	callback(now)
	return true
}

// Pending reports the number of queued frame callbacks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
