package springz

import (
	"strconv"

	"github.com/zoobzio/capitan"
)

// Field keys for spring and tuner events. Scalar values are formatted
// with formatFloat before being attached.
var (
	// KeyTarget is the target of the session or Set call.
	KeyTarget = capitan.NewStringKey("target")

	// KeyValue is the spring's live value.
	KeyValue = capitan.NewStringKey("value")

	// KeyVelocity is the spring's velocity.
	KeyVelocity = capitan.NewStringKey("velocity")

	// KeyFrames is the number of frames a session ran before settling.
	KeyFrames = capitan.NewIntKey("frames")

	// KeyDuration is the oscillation duration of an applied tuning.
	KeyDuration = capitan.NewStringKey("duration")

	// KeyDampingRatio is the damping ratio of an applied tuning.
	KeyDampingRatio = capitan.NewStringKey("damping_ratio")

	// KeySprings is the number of springs a tuning was applied to.
	KeySprings = capitan.NewIntKey("springs")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")
)

// formatFloat renders a scalar for event fields.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
