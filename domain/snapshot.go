package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"currency-registry/events"
	"currency-registry/shared"
)

type Snapshot struct {
	StreamID  string    `json:"streamId"`
	Version   int       `json:"version"`
	State     []byte    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

func CreateSnapshot(catalog *Catalog) (*Snapshot, error) {
	stateJSON, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog state for snapshot (ID: %s, Version: %d): %w", catalog.ID, catalog.Version, err)
	}

	return &Snapshot{
		StreamID:  catalog.ID,
		Version:   catalog.Version,
		State:     stateJSON,
		Timestamp: time.Now().UTC(),
	}, nil
}

// ApplySnapshot restores a catalog. Snapshot metadata wins over the embedded
// state when they disagree.
func ApplySnapshot(snap *Snapshot) (*Catalog, error) {
	var catalog Catalog
	err := json.Unmarshal(snap.State, &catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot state into catalog (ID: %s, Version: %d): %w", snap.StreamID, snap.Version, err)
	}

	catalog.ID = snap.StreamID
	catalog.Version = snap.Version
	catalog.changes = make([]events.Event, 0)

	if catalog.Currencies == nil {
		catalog.Currencies = make(map[string]shared.CurrencyRecord)
	}

	return &catalog, nil
}
