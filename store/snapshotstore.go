package store

import (
	"errors"
	"sync"
	"time"

	"currency-registry/domain"
)

var ErrNilSnapshot = errors.New("cannot save nil snapshot")

type SnapshotStore interface {
	SaveSnapshot(snapshot *domain.Snapshot) error

	GetLatestSnapshot(streamID string) (snapshot *domain.Snapshot, found bool, err error)
}

// InMemorySnapshotStore keeps the newest snapshot per stream. Older versions
// never replace newer ones.
type InMemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		snapshots: make(map[string]domain.Snapshot),
	}
}

func (s *InMemorySnapshotStore) SaveSnapshot(snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return ErrNilSnapshot
	}

	stored := *snapshot
	stored.State = append([]byte(nil), snapshot.State...)
	stored.Timestamp = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.snapshots[stored.StreamID]; ok && prev.Version > stored.Version {
		return nil
	}
	s.snapshots[stored.StreamID] = stored
	return nil
}

func (s *InMemorySnapshotStore) GetLatestSnapshot(streamID string) (*domain.Snapshot, bool, error) {
	s.mu.RLock()
	snapshot, found := s.snapshots[streamID]
	s.mu.RUnlock()

	if !found {
		return nil, false, nil
	}
	snapshot.State = append([]byte(nil), snapshot.State...)
	return &snapshot, true, nil
}
