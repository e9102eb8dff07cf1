package springz

import (
	"context"

	"github.com/zoobzio/capitan"
)

// drive starts a driving session if none is active. The session requests
// frames from the scheduler and keeps itself alive from within the frame
// callback until the integrator reports settlement.
func (s *Spring) drive() {
	s.mu.Lock()
	if s.animating {
		s.mu.Unlock()
		return
	}
	s.animating = true
	s.generation++
	s.baselined = false
	s.frames = 0
	gen := s.generation
	s.mu.Unlock()

	s.metrics.OnStateChange(StateIdle, StateAnimating)
	capitan.Emit(context.Background(), SpringSessionStarted,
		KeyTarget.Field(formatFloat(s.target.Get())),
	)

	s.scheduler.ScheduleNextFrame(func(ts float64) {
		s.frame(gen, ts)
	})
}

// frame handles one scheduler callback for the session identified by gen.
//
// The first callback of a session establishes the timestamp baseline and
// steps with zero elapsed time; subsequent callbacks step by the
// difference between consecutive timestamps. A callback from a stopped or
// superseded session is ignored.
func (s *Spring) frame(gen uint64, ts float64) {
	s.mu.Lock()
	if gen != s.generation || !s.animating {
		s.mu.Unlock()
		return
	}

	var elapsed float64
	if s.baselined {
		elapsed = ts - s.lastTimestamp
	}
	s.baselined = true
	s.lastTimestamp = ts
	s.frames++

	value, velocity, more, fire := s.integrate(elapsed)
	var frames int
	if !more {
		s.animating = false
		s.baselined = false
		frames = s.frames
		s.frames = 0
	}
	s.mu.Unlock()

	s.value.Set(value)
	s.velocity.Set(velocity)

	if more {
		s.metrics.OnFrame(int(elapsed))
		s.scheduler.ScheduleNextFrame(func(next float64) {
			s.frame(gen, next)
		})
		return
	}

	s.metrics.OnStateChange(StateAnimating, StateIdle)
	s.metrics.OnSettle(value)
	capitan.Emit(context.Background(), SpringSessionSettled,
		KeyTarget.Field(formatFloat(value)),
		KeyFrames.Field(frames),
	)
	if fire != nil {
		fire()
	}
}

// Stop tears down an active driving session without moving the spring:
// value and velocity are left wherever the last frame put them. Any frame
// callback already queued with the scheduler becomes a no-op.
//
// Stop does not fire or discard completion callbacks. A later Set to a
// new target resumes animation; a Set to the unchanged target does not.
func (s *Spring) Stop() {
	s.mu.Lock()
	if !s.animating {
		s.mu.Unlock()
		return
	}
	s.animating = false
	s.baselined = false
	s.frames = 0
	s.generation++
	s.mu.Unlock()

	s.metrics.OnStateChange(StateAnimating, StateIdle)
	capitan.Emit(context.Background(), SpringSessionStopped,
		KeyValue.Field(formatFloat(s.value.Get())),
	)
}
