package springz

import (
	"context"
	"sync"

	"github.com/zoobzio/capitan"
)

// Spring animates a scalar value toward a moving target.
//
// A Spring is in one of two states: idle, resting at its target, or
// animating, with a driving session stepping it toward the target once
// per scheduler frame. At most one session is ever active; redirecting
// the target mid-session is picked up on the next frame rather than
// spawning a second session.
//
// Methods are safe for concurrent use, but the intended model is
// cooperative: all motion happens on the scheduler's callback goroutine.
type Spring struct {
	mu sync.Mutex

	value    *Cell[float64]
	velocity *Cell[float64]
	target   *Cell[float64]

	duration     *Cell[float64]
	dampingRatio *Cell[float64]

	springConstant  float64
	dampingConstant float64

	scheduler   Scheduler
	metrics     MetricsProvider
	completions *completions

	animating     bool
	generation    uint64
	baselined     bool
	lastTimestamp float64
	frames        int
}

// New creates a Spring.
//
// Defaults: value 0, target 0, velocity 0, duration 1, damping ratio 1,
// and a TickScheduler at DefaultFPS on the real clock. A spring created
// with its target away from its value, or with a nonzero initial
// velocity, begins animating immediately.
func New(opts ...Option) *Spring {
	cfg := &springConfig{
		duration:     1,
		dampingRatio: 1,
		metrics:      NoOpMetricsProvider{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.scheduler == nil {
		cfg.scheduler = NewTickScheduler(DefaultFPS)
	}

	s := &Spring{
		value:        NewCell(cfg.initialValue),
		velocity:     NewCell(cfg.initialVelocity),
		target:       NewCell(cfg.target),
		duration:     NewCell(cfg.duration),
		dampingRatio: NewCell(cfg.dampingRatio),
		scheduler:    cfg.scheduler,
		metrics:      cfg.metrics,
		completions:  newCompletions(),
	}
	s.recompute()

	// The driver reacts to target changes; the physical coefficients
	// react to parameter changes.
	s.target.Subscribe(func(float64) {
		s.drive()
	})
	reparam := func(float64) {
		s.mu.Lock()
		s.recompute()
		s.mu.Unlock()
	}
	s.duration.Subscribe(reparam)
	s.dampingRatio.Subscribe(reparam)

	if cfg.target != cfg.initialValue || cfg.initialVelocity != 0 {
		s.drive()
	}

	return s
}

// Set redirects the spring toward target. If the spring is idle a driving
// session starts; if one is already active it picks up the new target on
// its next frame.
//
// Setting a target equal to the current one does not start a session.
func (s *Spring) Set(target float64, opts ...SetOption) {
	cfg := &setConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.onComplete != nil {
		s.completions.put(target, cfg.onComplete)
	}

	capitan.Emit(context.Background(), SpringTargetChanged,
		KeyTarget.Field(formatFloat(target)),
	)
	s.target.Set(target)
}

// Reset teleports the spring: value, velocity, and target are overwritten
// in one step, bypassing the integrator. The new value becomes the new
// target, so a zero-velocity reset parks the spring.
//
// A nonzero velocity starts a driving session if none is active: the
// spring swings away from the reset point under its own velocity and
// settles back. If a session is already active it simply picks up the new
// state on its next frame.
func (s *Spring) Reset(value, velocity float64) {
	s.mu.Lock()
	s.value.Store(value)
	s.velocity.Store(velocity)
	s.target.Store(value)
	active := s.animating
	s.mu.Unlock()

	capitan.Emit(context.Background(), SpringReset,
		KeyValue.Field(formatFloat(value)),
		KeyVelocity.Field(formatFloat(velocity)),
	)

	if velocity != 0 && !active {
		s.drive()
	}
}

// Value returns the live value: the most recent value written by the
// integrator or by Reset.
func (s *Spring) Value() float64 {
	return s.value.Get()
}

// Velocity returns the current velocity.
func (s *Spring) Velocity() float64 {
	return s.velocity.Get()
}

// Target returns the value the spring is currently pulled toward.
func (s *Spring) Target() float64 {
	return s.target.Get()
}

// Duration returns the oscillation duration in seconds.
func (s *Spring) Duration() float64 {
	return s.duration.Get()
}

// DampingRatio returns the damping ratio.
func (s *Spring) DampingRatio() float64 {
	return s.dampingRatio.Get()
}

// SetDuration changes the oscillation duration. The physical coefficients
// are rederived immediately; an active session uses them on its next
// frame.
func (s *Spring) SetDuration(d float64) {
	s.duration.Set(d)
}

// SetDampingRatio changes the damping ratio. The physical coefficients
// are rederived immediately; an active session uses them on its next
// frame.
func (s *Spring) SetDampingRatio(r float64) {
	s.dampingRatio.Set(r)
}

// Watch registers fn to receive the live value whenever it changes. The
// returned function removes the subscription.
func (s *Spring) Watch(fn func(float64)) func() {
	return s.value.Subscribe(fn)
}

// State returns the current state of the spring.
func (s *Spring) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.animating {
		return StateAnimating
	}
	return StateIdle
}
