package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

// BaseEvent is embedded in every catalog event. Version is the catalog version
// after the event is applied.
type BaseEvent struct {
	EventID   uuid.UUID `json:"eventId"`
	StreamID  string    `json:"streamId"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	CurrencyRegisteredType   EventType = "CurrencyRegistered"
	CurrencyUnregisteredType EventType = "CurrencyUnregistered"
)

func NewBaseEvent(streamID string, version int, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New(),
		StreamID:  streamID,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Type:      eventType,
	}
}
