package springz

import "testing"

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnStateChange(StateIdle, StateAnimating)
	m.OnFrame(16)
	m.OnSettle(1)
}
