package springz

import "github.com/zoobzio/capitan"

// Spring lifecycle signals.
var (
	// SpringSessionStarted is emitted when a driving session begins.
	SpringSessionStarted = capitan.NewSignal(
		"springz.session.started",
		"Driving session started",
	)

	// SpringSessionSettled is emitted when a driving session ends by
	// settling at the target.
	SpringSessionSettled = capitan.NewSignal(
		"springz.session.settled",
		"Spring settled at its target",
	)

	// SpringSessionStopped is emitted when a driving session is torn down
	// by Stop before settlement.
	SpringSessionStopped = capitan.NewSignal(
		"springz.session.stopped",
		"Driving session stopped before settlement",
	)

	// SpringTargetChanged is emitted when Set redirects the target.
	SpringTargetChanged = capitan.NewSignal(
		"springz.target.changed",
		"Spring target redirected",
	)

	// SpringReset is emitted when Reset overwrites value and velocity.
	SpringReset = capitan.NewSignal(
		"springz.spring.reset",
		"Spring value and velocity reset",
	)
)

// Tuner lifecycle signals.
var (
	// TunerStarted is emitted when a Tuner begins watching.
	TunerStarted = capitan.NewSignal(
		"springz.tuner.started",
		"Tuner watching started",
	)

	// TunerStopped is emitted when a Tuner stops watching.
	TunerStopped = capitan.NewSignal(
		"springz.tuner.stopped",
		"Tuner watching stopped",
	)

	// TuningApplied is emitted when a tuning is validated and applied.
	TuningApplied = capitan.NewSignal(
		"springz.tuning.applied",
		"Tuning applied to springs",
	)

	// TuningRejected is emitted when a tuning fails to parse or validate.
	TuningRejected = capitan.NewSignal(
		"springz.tuning.rejected",
		"Tuning rejected",
	)
)
