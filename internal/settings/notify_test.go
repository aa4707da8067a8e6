package settings

import "testing"

func TestFireWithZeroSubscribers(t *testing.T) {
	n := &notifier{}
	// Must not panic.
	n.fireUpdated()
	n.fireReset()
}

func TestMultipleSubscribers(t *testing.T) {
	n := &notifier{}

	var a, b int
	n.OnUpdated(func() { a++ })
	n.OnUpdated(func() { b++ })

	n.fireUpdated()
	n.fireUpdated()

	if a != 2 || b != 2 {
		t.Errorf("subscriber counts = %d, %d, want 2, 2", a, b)
	}
}

func TestUnsubscribe(t *testing.T) {
	n := &notifier{}

	var updated, reset int
	id := n.OnUpdated(func() { updated++ })
	n.OnReset(func() { reset++ })

	n.fireUpdated()
	n.Unsubscribe(id)
	n.fireUpdated()

	if updated != 1 {
		t.Errorf("updated fired %d times after unsubscribe, want 1", updated)
	}

	n.fireReset()
	if reset != 1 {
		t.Errorf("reset fired %d times, want 1", reset)
	}
}

func TestSignalsAreIndependent(t *testing.T) {
	n := &notifier{}

	var updated, reset int
	n.OnUpdated(func() { updated++ })
	n.OnReset(func() { reset++ })

	n.fireReset()

	if updated != 0 {
		t.Error("reset signal reached an updated subscriber")
	}
	if reset != 1 {
		t.Errorf("reset fired %d times, want 1", reset)
	}
}
