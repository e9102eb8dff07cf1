package springz

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorRing_NilRingAcceptsAndReturnsNothing(t *testing.T) {
	r := newErrorRing(0)
	if r != nil {
		t.Fatal("expected nil ring for zero size")
	}
	r.push(errors.New("ignored"))
	if got := r.all(); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestErrorRing_EmptyReturnsNil(t *testing.T) {
	r := newErrorRing(3)
	if got := r.all(); got != nil {
		t.Errorf("expected nil for empty ring, got %v", got)
	}
}

func TestErrorRing_RetainsOldestFirst(t *testing.T) {
	r := newErrorRing(3)
	r.push(errors.New("a"))
	r.push(errors.New("b"))

	got := r.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(got))
	}
	if got[0].Error() != "a" || got[1].Error() != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestErrorRing_EvictsOldestWhenFull(t *testing.T) {
	r := newErrorRing(3)
	for i := 1; i <= 5; i++ {
		r.push(fmt.Errorf("err %d", i))
	}

	got := r.all()
	if len(got) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(got))
	}
	expected := []string{"err 3", "err 4", "err 5"}
	for i, e := range got {
		if e.Error() != expected[i] {
			t.Errorf("position %d: expected %q, got %q", i, expected[i], e.Error())
		}
	}
}
