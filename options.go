package springz

// springConfig holds construction options for a Spring.
type springConfig struct {
	initialValue    float64
	target          float64
	initialVelocity float64
	duration        float64
	dampingRatio    float64
	scheduler       Scheduler
	metrics         MetricsProvider
}

// Option configures a Spring at construction.
type Option func(*springConfig)

// WithInitialValue sets the value the spring starts at. Default 0.
func WithInitialValue(v float64) Option {
	return func(c *springConfig) {
		c.initialValue = v
	}
}

// WithTarget sets the initial target. Default 0. A spring constructed
// with a target away from its initial value starts animating immediately.
func WithTarget(v float64) Option {
	return func(c *springConfig) {
		c.target = v
	}
}

// WithInitialVelocity sets the starting velocity. Default 0. A nonzero
// initial velocity starts a driving session immediately.
func WithInitialVelocity(v float64) Option {
	return func(c *springConfig) {
		c.initialVelocity = v
	}
}

// WithDuration sets the oscillation duration in seconds. Default 1.
func WithDuration(d float64) Option {
	return func(c *springConfig) {
		c.duration = d
	}
}

// WithDampingRatio sets the damping ratio: 0 is undamped, 1 critically
// damped, above 1 overdamped. Default 1.
func WithDampingRatio(r float64) Option {
	return func(c *springConfig) {
		c.dampingRatio = r
	}
}

// WithScheduler sets the frame scheduler. Defaults to a TickScheduler at
// DefaultFPS on the real clock. Use ManualScheduler for deterministic
// tests.
func WithScheduler(s Scheduler) Option {
	return func(c *springConfig) {
		c.scheduler = s
	}
}

// WithMetrics sets a MetricsProvider to receive lifecycle callbacks.
func WithMetrics(m MetricsProvider) Option {
	return func(c *springConfig) {
		c.metrics = m
	}
}

// setConfig holds options for a single Set call.
type setConfig struct {
	onComplete func()
}

// SetOption configures a single Set call.
type SetOption func(*setConfig)

// OnComplete registers fn to run exactly once, when the spring settles at
// the target requested by this Set call.
//
// Registering a second callback for the same target before settlement
// replaces the first. A callback whose target is abandoned before being
// reached is discarded at the next settlement.
func OnComplete(fn func()) SetOption {
	return func(c *setConfig) {
		c.onComplete = fn
	}
}
