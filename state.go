package springz

// State represents the current state of a Spring.
type State int32

const (
	// StateIdle indicates no driving session is active; the spring rests
	// at its target.
	StateIdle State = iota

	// StateAnimating indicates a driving session is active and the spring
	// is stepping toward its target.
	StateAnimating
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}
