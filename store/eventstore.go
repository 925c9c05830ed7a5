package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"currency-registry/events"
)

var (
	ErrOptimisticLock = errors.New("optimistic lock error: version conflict")
	ErrEmptyAppend    = errors.New("no events to append")
)

// EventStore is the journal of catalog changes, one ordered stream per catalog.
type EventStore interface {
	SaveEvents(streamID string, expectedVersion int, eventsToSave []events.Event) error

	GetEvents(streamID string) ([]events.Event, error)

	GetEventsAfterVersion(streamID string, version int) ([]events.Event, error)
}

type InMemoryEventStore struct {
	mu      sync.RWMutex
	streams map[string][]events.Event
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]events.Event),
	}
}

// SaveEvents appends to a stream when its current version equals expectedVersion.
// Events must carry consecutive versions starting at expectedVersion+1.
func (s *InMemoryEventStore) SaveEvents(streamID string, expectedVersion int, newEvents []events.Event) error {
	if len(newEvents) == 0 {
		return fmt.Errorf("%w: stream %s", ErrEmptyAppend, streamID)
	}
	for i, event := range newEvents {
		base := event.GetBase()
		if want := expectedVersion + i + 1; base.Version != want {
			return fmt.Errorf("event sequence error for stream %s: expected version %d for %T (%s), got %d",
				streamID, want, event, base.EventID, base.Version)
		}
		if base.StreamID != streamID {
			return fmt.Errorf("event stream mismatch: appending to %s, but %T (%s) belongs to %s",
				streamID, event, base.EventID, base.StreamID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[streamID]
	if current := len(stream); current != expectedVersion {
		return fmt.Errorf("%w: expected version %d, but current version is %d for stream %s",
			ErrOptimisticLock, expectedVersion, current, streamID)
	}
	s.streams[streamID] = append(stream, newEvents...)
	return nil
}

func (s *InMemoryEventStore) GetEvents(streamID string) ([]events.Event, error) {
	return s.GetEventsAfterVersion(streamID, 0)
}

// GetEventsAfterVersion returns a copy of the events whose version is greater
// than version.
func (s *InMemoryEventStore) GetEventsAfterVersion(streamID string, version int) ([]events.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[streamID]
	start := sort.Search(len(stream), func(i int) bool {
		return stream[i].GetBase().Version > version
	})

	out := make([]events.Event, len(stream)-start)
	copy(out, stream[start:])
	return out, nil
}

// Version is the version of the last event in the stream, 0 when empty.
func (s *InMemoryEventStore) Version(streamID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.streams[streamID])
}

// Streams lists stream IDs in lexical order.
func (s *InMemoryEventStore) Streams() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.streams))
	for id := range s.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
