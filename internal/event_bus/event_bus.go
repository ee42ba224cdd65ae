package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for events.
type EventType string

// Event is the envelope published on the bus. Data is kept as any so
// different payload types can share one bus; subscribers assert the type
// they expect.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NewEvent creates an Event carrying the caller's context, so handlers can
// reach context values such as the current user.
func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{ctx: ctx, Type: eventType, Timestamp: time.Now(), Data: data}
}

// Context returns the context the event was published with.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handler func(Event) error

// EventBus is a concurrency-safe synchronous dispatcher: Publish runs all
// handlers sequentially before returning.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]handler
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[EventType][]handler)}
}

// Subscribe registers a handler for the given event type.
func (eb *EventBus) Subscribe(eventType EventType, h func(Event) error) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], h)
}

// Publish dispatches the event to every handler registered for its type.
// Handler errors do not stop dispatch; they are collected and returned as a
// single error. A panicking handler is recovered and treated as an error.
func (eb *EventBus) Publish(e Event) error {
	eb.mu.RLock()
	handlers := make([]handler, len(eb.subscribers[e.Type]))
	copy(handlers, eb.subscribers[e.Type])
	eb.mu.RUnlock()

	var failures []error
	for i, h := range handlers {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic for event %s: %v", e.Type, r)
				}
			}()
			return h(e)
		}()
		if err != nil {
			log.Errorf("event bus: handler %d failed for event %s: %v", i, e.Type, err)
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("event %s: %d handler(s) failed: %v", e.Type, len(failures), failures)
	}
	return nil
}
