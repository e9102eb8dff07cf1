// Package springz animates a scalar value toward a moving target using a
// damped-harmonic-oscillator model.
//
// The core type is Spring, which owns a value, a velocity, and a target.
// Redirecting the target starts a driving session: the spring requests
// frames from a Scheduler and integrates the motion until it settles at
// the target, then goes idle.
//
// # Spring
//
// A Spring is constructed with functional options and mutated through a
// small API:
//
//	spring := springz.New(
//	    springz.WithDuration(0.5),
//	    springz.WithDampingRatio(0.8),
//	)
//
//	spring.Set(1, springz.OnComplete(func() {
//	    fmt.Println("arrived")
//	}))
//
// Set redirects the target; if the spring is idle a driving session starts,
// and if one is already running it simply picks up the new target on its
// next frame. Reset teleports the spring: value, velocity, and target are
// overwritten in one step, bypassing the integrator. Stop tears down an
// active session without moving the spring.
//
// # Physics
//
// User-facing parameters are an oscillation duration and a damping ratio
// (0 = undamped, 1 = critical, >1 = overdamped). They derive the physical
// coefficients:
//
//	springConstant  = 4π² / duration²
//	dampingConstant = dampingRatio · 2 · √springConstant
//
// Motion is integrated with symplectic Euler at a fixed 1 ms sub-step and
// unit mass. The spring is settled once both |value - target| and
// |velocity| drop below 0.001, at which point value snaps exactly to the
// target and velocity to zero.
//
// Degenerate parameters (zero or negative duration, negative damping
// ratio) are accepted and produce degenerate trajectories rather than
// errors. Opt into validation with the Tuner layer instead.
//
// # Scheduling
//
// The Scheduler interface abstracts the host's frame callbacks. The
// package provides TickScheduler, which delivers frames at a fixed rate
// from a clockz.Clock, and ManualScheduler, which queues frames and
// delivers them on demand for deterministic tests.
//
// # Live tuning
//
// Duration and damping ratio are live configuration. A Tuner watches a
// byte source (for example a file via FileWatcher), unmarshals a Tuning
// from JSON or YAML, validates it using go-playground/validator tags, and
// applies it to one or more springs. Invalid tunings are rejected and the
// springs keep their previous parameters.
//
// # Observability
//
// Lifecycle events are emitted as capitan signals: sessions started,
// settled, and stopped, target changes, resets, and tuner activity. A
// MetricsProvider hook is available for metrics systems.
package springz
