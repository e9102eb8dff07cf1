package springz

import "testing"

func TestSpringSessionStarted(t *testing.T) {
	if SpringSessionStarted.Name() != "springz.session.started" {
		t.Errorf("expected name 'springz.session.started', got %q", SpringSessionStarted.Name())
	}
}

func TestSpringSessionSettled(t *testing.T) {
	if SpringSessionSettled.Name() != "springz.session.settled" {
		t.Errorf("expected name 'springz.session.settled', got %q", SpringSessionSettled.Name())
	}
}

func TestSpringSessionStopped(t *testing.T) {
	if SpringSessionStopped.Name() != "springz.session.stopped" {
		t.Errorf("expected name 'springz.session.stopped', got %q", SpringSessionStopped.Name())
	}
}

func TestSpringTargetChanged(t *testing.T) {
	if SpringTargetChanged.Name() != "springz.target.changed" {
		t.Errorf("expected name 'springz.target.changed', got %q", SpringTargetChanged.Name())
	}
}

func TestSpringReset(t *testing.T) {
	if SpringReset.Name() != "springz.spring.reset" {
		t.Errorf("expected name 'springz.spring.reset', got %q", SpringReset.Name())
	}
}

func TestTunerStarted(t *testing.T) {
	if TunerStarted.Name() != "springz.tuner.started" {
		t.Errorf("expected name 'springz.tuner.started', got %q", TunerStarted.Name())
	}
}

func TestTunerStopped(t *testing.T) {
	if TunerStopped.Name() != "springz.tuner.stopped" {
		t.Errorf("expected name 'springz.tuner.stopped', got %q", TunerStopped.Name())
	}
}

func TestTuningApplied(t *testing.T) {
	if TuningApplied.Name() != "springz.tuning.applied" {
		t.Errorf("expected name 'springz.tuning.applied', got %q", TuningApplied.Name())
	}
}

func TestTuningRejected(t *testing.T) {
	if TuningRejected.Name() != "springz.tuning.rejected" {
		t.Errorf("expected name 'springz.tuning.rejected', got %q", TuningRejected.Name())
	}
}
