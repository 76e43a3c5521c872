// Package events implements the in-process event bus that keeps the
// MealTable views in sync. Publishing is synchronous: subscribers run
// on the publisher's goroutine before Publish returns.
package events

import (
	"log/slog"
	"sort"
	"sync"
)

// Topic identifies a class of events.
type Topic string

// Topics published by the application.
const (
	// InventoryUpdated fires after any pantry change.
	InventoryUpdated Topic = "inventory-updated"

	// GoalsUpdated fires after the daily goals change.
	GoalsUpdated Topic = "goals-updated"

	// DashboardUpdated fires after the daily nutrition log changes.
	DashboardUpdated Topic = "dashboard-updated"

	// CalendarUpdated fires after the meal calendar changes.
	CalendarUpdated Topic = "calendar-updated"

	// MealRemoved fires when a logged meal is removed, carrying the
	// meal so dependent views can tear down matching entries.
	MealRemoved Topic = "meal-removed"
)

// Event is delivered to subscribers.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives published events.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	topic Topic
	id    int
}

// Bus is a synchronous publish/subscribe bus. A topic already being
// delivered will not be delivered again reentrantly: a handler that
// republishes its own topic, directly or through a chain of other
// topics, has that nested publish dropped. Cascades therefore always
// terminate.
type Bus struct {
	mu       sync.Mutex
	handlers map[Topic]map[int]Handler
	nextID   int

	// inFlight tracks topics currently being delivered on this bus.
	inFlight map[Topic]bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic]map[int]Handler),
		inFlight: make(map[Topic]bool),
	}
}

// Subscribe registers a handler for a topic and returns a Subscription
// for later removal.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]Handler)
	}
	b.nextID++
	b.handlers[topic][b.nextID] = h

	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if hs := b.handlers[sub.topic]; hs != nil {
		delete(hs, sub.id)
	}
}

// Publish delivers the event to all subscribers of its topic, in
// registration order, before returning. A publish of a topic that is
// already mid-delivery is dropped.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.Lock()
	if b.inFlight[topic] {
		b.mu.Unlock()
		slog.Debug("dropping reentrant publish", "topic", topic)
		return
	}
	b.inFlight[topic] = true

	// Snapshot ordered handlers so subscribers may subscribe or
	// unsubscribe during delivery.
	ids := make([]int, 0, len(b.handlers[topic]))
	for id := range b.handlers[topic] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	hs := make([]Handler, 0, len(ids))
	for _, id := range ids {
		hs = append(hs, b.handlers[topic][id])
	}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.inFlight, topic)
		b.mu.Unlock()
	}()

	ev := Event{Topic: topic, Payload: payload}
	for _, h := range hs {
		h(ev)
	}
}
