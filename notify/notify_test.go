package notify

import (
	"testing"
)

func TestNotifier_Subscribe(t *testing.T) {
	n := New()

	var got []Change
	sub := n.Subscribe(func(change Change) {
		got = append(got, change)
	})
	defer sub.Unsubscribe()

	n.NotifySet("a", 1, 2)
	n.NotifySet("b", nil, "x")

	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(got))
	}
	if got[0].Name != "a" || got[0].Old != 1 || got[0].New != 2 {
		t.Errorf("change = %+v", got[0])
	}
}

func TestNotifier_SubscribeProperty(t *testing.T) {
	n := New()

	var got []Change
	sub := n.SubscribeProperty("a", func(change Change) {
		got = append(got, change)
	})
	defer sub.Unsubscribe()

	n.NotifySet("a", 1, 2)
	n.NotifySet("b", 1, 2)

	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("observed = %v, want only changes to 'a'", got)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := New()

	count := 0
	sub := n.Subscribe(func(Change) { count++ })

	n.NotifySet("a", 1, 2)
	sub.Unsubscribe()
	n.NotifySet("a", 2, 3)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestNotifier_UnsubscribeProperty(t *testing.T) {
	n := New()

	count := 0
	sub := n.SubscribeProperty("a", func(Change) { count++ })

	n.NotifySet("a", 1, 2)
	sub.Unsubscribe()
	n.NotifySet("a", 2, 3)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestNotifier_MultipleObservers(t *testing.T) {
	n := New()

	a, b := 0, 0
	n.Subscribe(func(Change) { a++ })
	n.SubscribeProperty("x", func(Change) { b++ })

	n.NotifySet("x", 1, 2)

	if a != 1 || b != 1 {
		t.Errorf("a = %d, b = %d, want 1, 1", a, b)
	}
}
