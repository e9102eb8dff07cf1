package springz

// MetricsProvider allows integration with metrics systems like Prometheus,
// StatsD, etc. Implement this interface to receive callbacks on key spring
// events and wire it in with WithMetrics.
type MetricsProvider interface {
	// OnStateChange is called when the spring transitions between idle
	// and animating.
	OnStateChange(from, to State)

	// OnFrame is called once per driving frame that did not settle, with
	// the number of whole-millisecond sub-steps integrated.
	OnFrame(subSteps int)

	// OnSettle is called when the spring settles, with the target it
	// settled at.
	OnSettle(target float64)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State) {}
func (NoOpMetricsProvider) OnFrame(_ int)            {}
func (NoOpMetricsProvider) OnSettle(_ float64)       {}
