package springz

import "testing"

func TestCompletion_FiresExactlyOnce(t *testing.T) {
	sched := NewManualScheduler()
	s := New(WithScheduler(sched))

	var fired int
	s.Set(1, OnComplete(func() {
		fired++
	}))

	settle(t, sched, 2000)
	if fired != 1 {
		t.Fatalf("expected completion to fire once, got %d", fired)
	}

	// Settlement is terminal; nothing re-fires.
	sched.Advance(frameMillis)
	if fired != 1 {
		t.Errorf("expected no additional firings, got %d", fired)
	}
}

func TestCompletion_CollisionLaw(t *testing.T) {
	sched := NewManualScheduler()
	s := New(WithScheduler(sched))

	var firedA, firedB bool
	s.Set(5, OnComplete(func() {
		firedA = true
	}))
	s.Set(5, OnComplete(func() {
		firedB = true
	}))

	settle(t, sched, 2000)

	if firedA {
		t.Error("expected the replaced callback never to fire")
	}
	if !firedB {
		t.Error("expected the replacing callback to fire")
	}
}

func TestCompletion_DiscardLaw(t *testing.T) {
	sched := NewManualScheduler()
	s := New(WithScheduler(sched))

	var firedA bool
	s.Set(5, OnComplete(func() {
		firedA = true
	}))

	sched.Advance(frameMillis)
	sched.Advance(frameMillis)

	s.Set(7)
	settle(t, sched, 2000)

	if s.Value() != 7 {
		t.Fatalf("expected settlement at 7, got %v", s.Value())
	}
	if firedA {
		t.Error("expected the abandoned callback never to fire")
	}
}

func TestCompletion_MappingClearedOnSettlement(t *testing.T) {
	sched := NewManualScheduler()
	s := New(WithScheduler(sched))

	var firedA int
	s.Set(5, OnComplete(func() {
		firedA++
	}))
	settle(t, sched, 2000)
	if firedA != 1 {
		t.Fatalf("expected one firing at 5, got %d", firedA)
	}

	// Returning to 5 later does not resurrect the consumed callback.
	s.Set(6)
	settle(t, sched, 2000)
	s.Set(5)
	settle(t, sched, 2000)

	if firedA != 1 {
		t.Errorf("expected the consumed callback to stay consumed, got %d firings", firedA)
	}
}

func TestCompletion_ChainedSetFromCallback(t *testing.T) {
	sched := NewManualScheduler()
	s := New(WithScheduler(sched))

	var chained bool
	s.Set(1, OnComplete(func() {
		s.Set(2, OnComplete(func() {
			chained = true
		}))
	}))

	settle(t, sched, 2000)
	// The first settlement's callback started a second session.
	settle(t, sched, 2000)

	if !chained {
		t.Error("expected the chained animation to complete")
	}
	if s.Value() != 2 {
		t.Errorf("expected final value 2, got %v", s.Value())
	}
}
