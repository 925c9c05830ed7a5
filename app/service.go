package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"currency-registry/codec"
	"currency-registry/domain"
	"currency-registry/events"
	"currency-registry/metrics"
	"currency-registry/registry"
	"currency-registry/shared"
	"currency-registry/store"
)

const (
	// CatalogStream is the journal stream holding custom currency changes.
	CatalogStream = "custom-currencies"

	DefaultSnapshotFrequency = 100
)

// CurrencyService is the application layer over a registry. Custom currencies
// registered through it are journaled as events so they can be replayed onto
// another registry with Rebuild.
type CurrencyService struct {
	registry      *registry.Registry
	eventStore    store.EventStore
	snapshotStore store.SnapshotStore

	logger            zerolog.Logger
	metrics           *metrics.Metrics
	snapshotFrequency int
	defaultMode       domain.RoundingMode
	validate          *validator.Validate

	// mu keeps the registry and the journal in step across a mutation.
	mu sync.Mutex
}

type Option func(*CurrencyService)

func WithLogger(l zerolog.Logger) Option {
	return func(s *CurrencyService) { s.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *CurrencyService) { s.metrics = m }
}

func WithSnapshotFrequency(n int) Option {
	return func(s *CurrencyService) {
		if n > 0 {
			s.snapshotFrequency = n
		}
	}
}

func WithRoundingMode(mode domain.RoundingMode) Option {
	return func(s *CurrencyService) { s.defaultMode = mode }
}

func NewCurrencyService(reg *registry.Registry, es store.EventStore, ss store.SnapshotStore, opts ...Option) *CurrencyService {
	if reg == nil || es == nil || ss == nil {
		panic("app: registry, event store and snapshot store must not be nil")
	}
	s := &CurrencyService{
		registry:          reg,
		eventStore:        es,
		snapshotStore:     ss,
		logger:            zerolog.Nop(),
		snapshotFrequency: DefaultSnapshotFrequency,
		defaultMode:       domain.HalfEven,
		validate:          validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CurrencyService) Registry() *registry.Registry {
	return s.registry
}

func (s *CurrencyService) validateInput(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}

// --- Command Handlers ---

func (s *CurrencyService) Register(cmd RegisterCurrencyCommand) (domain.Currency, error) {
	if err := s.validateInput(cmd); err != nil {
		s.metrics.RecordMutation("register", "invalid")
		return domain.Currency{}, err
	}
	currency, err := buildCurrency(cmd)
	if err != nil {
		s.metrics.RecordMutation("register", "invalid")
		return domain.Currency{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.loadCatalog()
	if err != nil {
		return domain.Currency{}, fmt.Errorf("failed to load catalog for register: %w", err)
	}
	initialVersion := catalog.Version

	if err := catalog.HandleRegister(currency); err != nil {
		s.metrics.RecordMutation("register", "conflict")
		return domain.Currency{}, err
	}
	if err := s.registry.Register(currency); err != nil {
		s.metrics.RecordMutation("register", "conflict")
		s.logger.Info().Str("code", currency.Code()).Str("namespace", currency.Namespace().String()).
			Err(err).Msg("registration rejected")
		return domain.Currency{}, err
	}

	changes := catalog.GetUncommitedChanges()
	if err := s.eventStore.SaveEvents(catalog.ID, initialVersion, changes); err != nil {
		if _, rbErr := s.registry.Unregister(currency.Code(), currency.Namespace()); rbErr != nil {
			s.logger.Error().Err(rbErr).Str("code", currency.Code()).Msg("rollback of registration failed")
		}
		s.metrics.RecordMutation("register", "error")
		return domain.Currency{}, fmt.Errorf("failed to save register events for %s: %w", currency, err)
	}

	s.metrics.RecordMutation("register", "ok")
	s.metrics.SetCatalogSize(len(catalog.Currencies))
	s.logger.Info().
		Str("code", currency.Code()).
		Str("namespace", currency.Namespace().String()).
		Str("digits", currency.Digits().String()).
		Int("version", catalog.Version).
		Msg("currency registered")

	s.saveSnapshotIfNeeded(catalog)
	return currency, nil
}

// Unregister removes a custom currency. Seeded definitions are not part of the
// catalog and cannot be removed here.
func (s *CurrencyService) Unregister(cmd UnregisterCurrencyCommand) (domain.Currency, error) {
	if err := s.validateInput(cmd); err != nil {
		s.metrics.RecordMutation("unregister", "invalid")
		return domain.Currency{}, err
	}
	code := strings.TrimSpace(cmd.Code)
	ns := shared.Namespace(strings.TrimSpace(cmd.Namespace))

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.loadCatalog()
	if err != nil {
		return domain.Currency{}, fmt.Errorf("failed to load catalog for unregister: %w", err)
	}
	initialVersion := catalog.Version

	if !catalog.Contains(ns, code) {
		s.metrics.RecordMutation("unregister", "not_found")
		if _, seeded := s.registry.TryLookup(code, ns); seeded {
			return domain.Currency{}, fmt.Errorf("%w: %s in namespace %s is seeded, not custom", domain.ErrInvalidArgument, code, ns)
		}
		return domain.Currency{}, fmt.Errorf("%w: %s in namespace %s", domain.ErrNotFound, code, ns)
	}

	currency, err := s.registry.Unregister(code, ns)
	if err != nil {
		s.metrics.RecordMutation("unregister", "error")
		return domain.Currency{}, fmt.Errorf("catalog and registry disagree on %s: %w", shared.Key(ns, code), err)
	}
	if err := catalog.HandleUnregister(currency, cmd.Reason); err != nil {
		s.restore(currency)
		return domain.Currency{}, err
	}

	changes := catalog.GetUncommitedChanges()
	if err := s.eventStore.SaveEvents(catalog.ID, initialVersion, changes); err != nil {
		s.restore(currency)
		s.metrics.RecordMutation("unregister", "error")
		return domain.Currency{}, fmt.Errorf("failed to save unregister events for %s: %w", currency, err)
	}

	s.metrics.RecordMutation("unregister", "ok")
	s.metrics.SetCatalogSize(len(catalog.Currencies))
	s.logger.Info().
		Str("code", code).
		Str("namespace", ns.String()).
		Str("reason", cmd.Reason).
		Int("version", catalog.Version).
		Msg("currency unregistered")

	s.saveSnapshotIfNeeded(catalog)
	return currency, nil
}

func (s *CurrencyService) restore(c domain.Currency) {
	if err := s.registry.Register(c); err != nil {
		s.logger.Error().Err(err).Str("code", c.Code()).Msg("rollback of removal failed")
	}
}

// Value builds Money from a decimal string and a currency reference.
func (s *CurrencyService) Value(cmd ValueCommand) (domain.Money, error) {
	if err := s.validateInput(cmd); err != nil {
		return domain.Money{}, err
	}
	mode := s.defaultMode
	if cmd.Mode != "" {
		var err error
		if mode, err = domain.ParseRoundingMode(cmd.Mode); err != nil {
			return domain.Money{}, err
		}
	}

	code, ns, err := codec.SplitRef(cmd.Currency)
	if err != nil {
		return domain.Money{}, err
	}
	currency, err := s.lookup(code, ns)
	if err != nil {
		return domain.Money{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(cmd.Amount))
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: amount %q", domain.ErrInvalidArgument, cmd.Amount)
	}

	s.metrics.RecordRounding(mode.String())
	return domain.NewMoneyWithMode(amount, currency, mode), nil
}

// --- Query Handlers ---

func (s *CurrencyService) Lookup(q LookupQuery) (domain.Currency, error) {
	if err := s.validateInput(q); err != nil {
		s.metrics.RecordLookup(q.Namespace, "invalid")
		return domain.Currency{}, err
	}
	if strings.TrimSpace(q.Namespace) == "" {
		c, err := s.registry.LookupAny(q.Code)
		s.recordLookup("", q.Code, err)
		return c, err
	}
	return s.lookup(q.Code, shared.Namespace(q.Namespace))
}

func (s *CurrencyService) lookup(code string, ns shared.Namespace) (domain.Currency, error) {
	c, err := s.registry.Lookup(code, ns)
	s.recordLookup(ns, code, err)
	return c, err
}

func (s *CurrencyService) recordLookup(ns shared.Namespace, code string, err error) {
	result := "hit"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		result = "miss"
		s.logger.Debug().Str("code", code).Str("namespace", ns.String()).Msg("currency not found")
	case errors.Is(err, domain.ErrAmbiguousCurrency):
		result = "ambiguous"
		s.logger.Debug().Str("code", code).Msg("currency code is ambiguous")
	default:
		result = "invalid"
	}
	s.metrics.RecordLookup(ns.String(), result)
}

// List returns registry definitions, optionally restricted to a namespace and
// to those valid on a given day.
func (s *CurrencyService) List(q ListQuery) []domain.Currency {
	var all []domain.Currency
	if ns := strings.TrimSpace(q.Namespace); ns != "" {
		all = s.registry.ListNamespace(shared.Namespace(ns))
	} else {
		all = s.registry.List()
	}
	if q.ValidOn.IsZero() {
		return all
	}

	out := all[:0]
	for _, c := range all {
		if c.IsValidOn(q.ValidOn) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CurrencyService) Namespaces() []shared.Namespace {
	return s.registry.Namespaces()
}

// History pages through the catalog journal, oldest first.
func (s *CurrencyService) History(q GetHistoryQuery) ([]events.Event, error) {
	if err := s.validateInput(q); err != nil {
		return nil, err
	}
	history, err := s.eventStore.GetEvents(CatalogStream)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog history: %w", err)
	}

	total := len(history)
	start := q.Skip
	if start >= total {
		return []events.Event{}, nil
	}
	end := start + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}
	return history[start:end], nil
}

// Rebuild replays the catalog onto reg, typically a freshly seeded registry.
// It returns the number of custom currencies registered.
func (s *CurrencyService) Rebuild(reg *registry.Registry) (int, error) {
	s.mu.Lock()
	catalog, err := s.loadCatalog()
	s.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog for rebuild: %w", err)
	}

	defs, err := catalog.Definitions()
	if err != nil {
		return 0, fmt.Errorf("catalog at version %d holds an invalid definition: %w", catalog.Version, err)
	}
	for i, c := range defs {
		if err := reg.Register(c); err != nil {
			return i, fmt.Errorf("rebuild stopped at %s: %w", c, err)
		}
	}

	s.logger.Info().Int("currencies", len(defs)).Int("version", catalog.Version).Msg("registry rebuilt from catalog")
	return len(defs), nil
}

// --- Catalog Loading & Snapshotting ---

func buildCurrency(cmd RegisterCurrencyCommand) (domain.Currency, error) {
	digits, err := domain.ParseDigitsText(strings.TrimSpace(cmd.Digits))
	if err != nil {
		return domain.Currency{}, err
	}
	p := domain.CurrencyParams{
		Code:        cmd.Code,
		NumericCode: cmd.NumericCode,
		Digits:      digits,
		EnglishName: cmd.EnglishName,
		Symbol:      cmd.Symbol,
		Namespace:   shared.Namespace(cmd.Namespace),
	}
	if cmd.ValidFrom != "" {
		if p.ValidFrom, err = time.Parse(time.DateOnly, cmd.ValidFrom); err != nil {
			return domain.Currency{}, fmt.Errorf("%w: validFrom %q", domain.ErrInvalidArgument, cmd.ValidFrom)
		}
	}
	if cmd.ValidTo != "" {
		if p.ValidTo, err = time.Parse(time.DateOnly, cmd.ValidTo); err != nil {
			return domain.Currency{}, fmt.Errorf("%w: validTo %q", domain.ErrInvalidArgument, cmd.ValidTo)
		}
	}
	return domain.NewCurrency(p)
}

func (s *CurrencyService) loadCatalog() (*domain.Catalog, error) {
	var catalog *domain.Catalog
	snapshotVersion := 0

	snapshot, found, err := s.snapshotStore.GetLatestSnapshot(CatalogStream)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load catalog snapshot, replaying all events")
		found = false
	}

	if found {
		catalog, err = domain.ApplySnapshot(snapshot)
		if err != nil {
			s.logger.Error().Err(err).Int("version", snapshot.Version).Msg("failed to apply catalog snapshot, replaying all events")
			catalog = domain.NewCatalog(CatalogStream)
		} else {
			snapshotVersion = catalog.Version
		}
	} else {
		catalog = domain.NewCatalog(CatalogStream)
	}

	toApply, err := s.eventStore.GetEventsAfterVersion(CatalogStream, snapshotVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog events after version %d: %w", snapshotVersion, err)
	}
	if err := catalog.ApplyEvents(toApply); err != nil {
		return nil, fmt.Errorf("critical error applying events to catalog: %w", err)
	}
	return catalog, nil
}

func (s *CurrencyService) saveSnapshotIfNeeded(catalog *domain.Catalog) {
	if catalog.Version == 0 || catalog.Version%s.snapshotFrequency != 0 {
		return
	}

	snapshot, err := domain.CreateSnapshot(catalog)
	if err != nil {
		s.logger.Error().Err(err).Int("version", catalog.Version).Msg("failed to create catalog snapshot")
		return
	}
	if err := s.snapshotStore.SaveSnapshot(snapshot); err != nil {
		s.logger.Error().Err(err).Int("version", catalog.Version).Msg("failed to save catalog snapshot")
		return
	}
	s.logger.Debug().Int("version", catalog.Version).Msg("catalog snapshot saved")
}
