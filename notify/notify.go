// Package notify provides change notification for property writes.
//
// The notify package implements an observer pattern that allows
// components to subscribe to store changes and receive callbacks when
// property values are replaced. Delivery is synchronous: observers run
// on the writer's goroutine before the write call returns.
package notify

import (
	"sync"
)

// Change represents a property value change.
type Change struct {
	// Name is the property whose value changed.
	Name string

	// Old is the previous value (nil when the property was just created).
	Old any

	// New is the value that was written.
	New any
}

// Observer is called when a property changes.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// Global observers receive every change.
	globalObservers map[uint64]Observer

	// Per-property observers.
	propObservers map[string]map[uint64]Observer

	nextID uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		propObservers:   make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribeProperty registers an observer for changes to a single property.
func (n *Notifier) SubscribeProperty(name string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	if n.propObservers[name] == nil {
		n.propObservers[name] = make(map[uint64]Observer)
	}
	n.propObservers[name][id] = observer

	return &Subscription{id: id, notifier: n}
}

// NotifySet delivers a change to all matching observers.
func (n *Notifier) NotifySet(name string, old, new any) {
	n.Notify(Change{Name: name, Old: old, New: new})
}

// Notify delivers a change to all matching observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()

	var observers []Observer
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}
	if propObs, ok := n.propObservers[change.Name]; ok {
		for _, obs := range propObs {
			observers = append(observers, obs)
		}
	}

	n.mu.RUnlock()

	// Call observers outside the lock
	for _, obs := range observers {
		obs(change)
	}
}

// unsubscribe removes an observer by ID.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)
	for name, observers := range n.propObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.propObservers, name)
		}
	}
}
