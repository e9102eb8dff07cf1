package springz

import "math"

// Epsilon is the settlement threshold. The spring is settled once both
// |value - target| and |velocity| are below Epsilon, at which point value
// snaps exactly to the target and velocity to zero.
const Epsilon = 0.001

// subStep is the fixed integration sub-step in seconds (one millisecond).
const subStep = 0.001

// SpringConstant derives the restoring-force coefficient from the
// oscillation duration: 4π² / duration².
//
// There is no domain validation: a zero duration yields +Inf and a
// negative duration yields the same finite constant as its absolute
// value. Both produce extreme but still-computed trajectories.
func SpringConstant(duration float64) float64 {
	return 4 * math.Pi * math.Pi / (duration * duration)
}

// DampingConstant derives the energy-dissipation coefficient from the
// damping ratio: dampingRatio · 2 · √springConstant, or 0 when the spring
// constant is not positive.
func DampingConstant(dampingRatio, springConstant float64) float64 {
	if springConstant <= 0 {
		return 0
	}
	return dampingRatio * 2 * math.Sqrt(springConstant)
}

// recompute rederives the physical coefficients from the duration and
// damping-ratio cells. Caller holds s.mu.
func (s *Spring) recompute() {
	s.springConstant = SpringConstant(s.duration.Get())
	s.dampingConstant = DampingConstant(s.dampingRatio.Get(), s.springConstant)
}

// integrate advances the motion by elapsedMillis of wall time toward the
// current target using symplectic Euler at 1 ms sub-steps and unit mass.
// Caller holds s.mu.
//
// If the spring is already settled against the current target, it reports
// more=false with value pinned to the target and velocity zeroed, and
// returns the completion callback registered for that target, if any.
// Otherwise it runs one whole sub-step per elapsed millisecond (fractional
// milliseconds are dropped, not carried over) and reports more=true.
func (s *Spring) integrate(elapsedMillis float64) (value, velocity float64, more bool, fire func()) {
	target := s.target.Get()
	value = s.value.Get()
	velocity = s.velocity.Get()

	if math.Abs(velocity) < Epsilon && math.Abs(value-target) < Epsilon {
		return target, 0, false, s.completions.take(target)
	}

	steps := int(elapsedMillis)
	for i := 0; i < steps; i++ {
		// Velocity first, from the force at the start-of-step value,
		// then position from the new velocity. The order is the
		// integration scheme.
		force := -s.springConstant*(value-target) - s.dampingConstant*velocity
		velocity += force * subStep
		value += velocity * subStep
	}
	return value, velocity, true, nil
}
