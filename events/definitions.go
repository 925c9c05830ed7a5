package events

import (
	"currency-registry/shared"
)

type CurrencyRegisteredEvent struct {
	BaseEvent
	Currency shared.CurrencyRecord `json:"currency"`
}

type CurrencyUnregisteredEvent struct {
	BaseEvent
	Currency shared.CurrencyRecord `json:"currency"`
	Reason   string                `json:"reason,omitempty"`
}
