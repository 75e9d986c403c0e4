// Package events holds the IEventSink implementations: an in-memory
// reference sink and a RabbitMQ publisher.
package events

import (
	"context"
	"sync"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"
)

// MemorySink records every published event and fans it out synchronously to
// per-kind subscribers. It is the reference sink for tests and local runs;
// downstream consumers (notifications, wallet, inventory) subscribe to the
// kinds they care about.

type MemorySink struct {
	mu          sync.Mutex
	events      []entities.Event
	subscribers map[entities.EventKind][]func(entities.Event)
}

var _ interfaces.IEventSink = (*MemorySink)(nil)

func NewMemorySink() *MemorySink {
	return &MemorySink{subscribers: make(map[entities.EventKind][]func(entities.Event))}
}

func (s *MemorySink) Publish(_ context.Context, event entities.Event) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	handlers := append(([]func(entities.Event))(nil), s.subscribers[event.Kind]...)
	s.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe registers fn for every future event of the given kind.
func (s *MemorySink) Subscribe(kind entities.EventKind, fn func(entities.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[kind] = append(s.subscribers[kind], fn)
}

// Events returns a copy of everything published so far.
func (s *MemorySink) Events() []entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Event(nil), s.events...)
}

// EventsOfKind filters the recorded events.
func (s *MemorySink) EventsOfKind(kind entities.EventKind) []entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Event
	for _, ev := range s.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
