package springz

import "testing"

func TestCell_GetReturnsInitial(t *testing.T) {
	c := NewCell(42.0)
	if got := c.Get(); got != 42.0 {
		t.Errorf("expected 42, got %v", got)
	}
}

func TestCell_SetNotifiesSubscribers(t *testing.T) {
	c := NewCell(0.0)
	var got float64
	c.Subscribe(func(v float64) {
		got = v
	})

	c.Set(3.5)

	if got != 3.5 {
		t.Errorf("expected listener to receive 3.5, got %v", got)
	}
	if c.Get() != 3.5 {
		t.Errorf("expected stored value 3.5, got %v", c.Get())
	}
}

func TestCell_SetSameValueDoesNotNotify(t *testing.T) {
	c := NewCell(1.0)
	var calls int
	c.Subscribe(func(float64) {
		calls++
	})

	c.Set(1.0)

	if calls != 0 {
		t.Errorf("expected no notification for unchanged value, got %d calls", calls)
	}
}

func TestCell_StoreIsSilent(t *testing.T) {
	c := NewCell(0.0)
	var calls int
	c.Subscribe(func(float64) {
		calls++
	})

	c.Store(9.0)

	if calls != 0 {
		t.Errorf("expected no notification from Store, got %d calls", calls)
	}
	if c.Get() != 9.0 {
		t.Errorf("expected stored value 9, got %v", c.Get())
	}
}

func TestCell_SetAfterStoreNotifiesOnChange(t *testing.T) {
	c := NewCell(0.0)
	var calls int
	c.Subscribe(func(float64) {
		calls++
	})

	c.Store(5.0)
	c.Set(5.0)
	if calls != 0 {
		t.Errorf("expected no notification when Set matches stored value, got %d", calls)
	}

	c.Set(6.0)
	if calls != 1 {
		t.Errorf("expected one notification, got %d", calls)
	}
}

func TestCell_SubscribersNotifiedInOrder(t *testing.T) {
	c := NewCell(0.0)
	var order []int
	c.Subscribe(func(float64) {
		order = append(order, 1)
	})
	c.Subscribe(func(float64) {
		order = append(order, 2)
	})

	c.Set(1.0)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected notification order [1 2], got %v", order)
	}
}

func TestCell_UnsubscribeStopsNotifications(t *testing.T) {
	c := NewCell(0.0)
	var calls int
	unsubscribe := c.Subscribe(func(float64) {
		calls++
	})

	c.Set(1.0)
	unsubscribe()
	c.Set(2.0)

	if calls != 1 {
		t.Errorf("expected one notification before unsubscribe, got %d", calls)
	}
}
