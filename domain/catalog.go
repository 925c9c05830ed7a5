package domain

import (
	"fmt"
	"sort"

	"currency-registry/events"
	"currency-registry/shared"
)

// Catalog is the aggregate of custom currency definitions layered on top of the
// seeded ISO table. Its event stream is the registry change journal and can be
// replayed onto a fresh registry.
type Catalog struct {
	ID         string                           `json:"id"`
	Currencies map[string]shared.CurrencyRecord `json:"currencies"`
	Version    int                              `json:"version"`

	changes []events.Event
}

func NewCatalog(id string) *Catalog {
	return &Catalog{
		ID:         id,
		Currencies: make(map[string]shared.CurrencyRecord),
		Version:    0,
		changes:    make([]events.Event, 0),
	}
}

func (c *Catalog) GetUncommitedChanges() []events.Event {
	unCommittedChanges := c.changes
	c.changes = make([]events.Event, 0)
	return unCommittedChanges
}

func (c *Catalog) handleChange(event events.Event) error {
	if err := c.ApplyEvent(event); err != nil {
		return fmt.Errorf("internal error applying event %T: %w", event, err)
	}
	c.changes = append(c.changes, event)
	return nil
}

func (c *Catalog) HandleRegister(currency Currency) error {
	if currency.IsZero() {
		return fmt.Errorf("%w: cannot register an empty definition", ErrInvalidArgument)
	}
	if _, ok := c.Currencies[currency.Key()]; ok {
		return fmt.Errorf("%w: %s in catalog %s", ErrAlreadyExists, currency, c.ID)
	}

	event := events.CurrencyRegisteredEvent{
		BaseEvent: events.NewBaseEvent(c.ID, c.Version+1, events.CurrencyRegisteredType),
		Currency:  currency.Record(),
	}
	return c.handleChange(event)
}

func (c *Catalog) HandleUnregister(currency Currency, reason string) error {
	if _, ok := c.Currencies[currency.Key()]; !ok {
		return fmt.Errorf("%w: %s in catalog %s", ErrNotFound, currency, c.ID)
	}

	event := events.CurrencyUnregisteredEvent{
		BaseEvent: events.NewBaseEvent(c.ID, c.Version+1, events.CurrencyUnregisteredType),
		Currency:  currency.Record(),
		Reason:    reason,
	}
	return c.handleChange(event)
}

// Contains reports whether the catalog holds the definition with the given key.
func (c *Catalog) Contains(ns shared.Namespace, code string) bool {
	_, ok := c.Currencies[shared.Key(ns, code)]
	return ok
}

func (c *Catalog) ApplyEvent(event events.Event) error {
	base := event.GetBase()

	if base.Version != c.Version+1 {
		return fmt.Errorf("apply failed: event version mismatch for catalog %s: expected %d, got %d for event %T (%s)",
			c.ID, c.Version+1, base.Version, event, base.EventID)
	}

	switch e := event.(type) {
	case events.CurrencyRegisteredEvent:
		if _, err := CurrencyFromRecord(e.Currency); err != nil {
			return fmt.Errorf("apply failed: invalid definition in %T (v%d): %w", event, base.Version, err)
		}
		c.Currencies[e.Currency.Key()] = e.Currency
	case events.CurrencyUnregisteredEvent:
		if _, ok := c.Currencies[e.Currency.Key()]; !ok {
			return fmt.Errorf("invariant violation: %T (v%d) removes unknown currency %s", event, base.Version, e.Currency.Key())
		}
		delete(c.Currencies, e.Currency.Key())
	default:
		return fmt.Errorf("apply failed: unknown event type %T for catalog %s", event, c.ID)
	}

	c.Version = base.Version
	return nil
}

func (c *Catalog) ApplyEvents(history []events.Event) error {
	for _, event := range history {
		if err := c.ApplyEvent(event); err != nil {
			base := event.GetBase()
			return fmt.Errorf("failed to apply event %s (%T) at version %d during reconstruction: %w", base.EventID, event, base.Version, err)
		}
	}
	return nil
}

// Definitions returns the catalog's currencies ordered by registry key.
func (c *Catalog) Definitions() ([]Currency, error) {
	keys := make([]string, 0, len(c.Currencies))
	for k := range c.Currencies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Currency, 0, len(keys))
	for _, k := range keys {
		cur, err := CurrencyFromRecord(c.Currencies[k])
		if err != nil {
			return nil, err
		}
		out = append(out, cur)
	}
	return out, nil
}
