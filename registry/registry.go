// Package registry resolves currency codes to definitions across namespaces.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"currency-registry/domain"
	"currency-registry/shared"
)

// Registry is a namespaced, concurrency-safe map of currency definitions.
// Every method is atomic on its own; nothing is promised across calls.
type Registry struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
	// namespaces counts the entries held per namespace. A namespace is listed
	// while its count is positive.
	namespaces map[shared.Namespace]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		currencies: make(map[string]domain.Currency),
		namespaces: make(map[shared.Namespace]int),
	}
}

func checkArg(what, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidArgument, what)
	}
	return v, nil
}

// Lookup finds code in exactly one namespace.
func (r *Registry) Lookup(code string, ns shared.Namespace) (domain.Currency, error) {
	code, err := checkArg("code", code)
	if err != nil {
		return domain.Currency{}, err
	}
	nsName, err := checkArg("namespace", string(ns))
	if err != nil {
		return domain.Currency{}, err
	}
	ns = shared.Namespace(nsName)

	r.mu.RLock()
	c, ok := r.currencies[shared.Key(ns, code)]
	r.mu.RUnlock()
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: %s in namespace %s", domain.ErrNotFound, code, ns)
	}
	return c, nil
}

// LookupAny finds code in whichever namespace holds it. When more than one
// namespace does, it fails with ErrAmbiguousCurrency instead of guessing.
func (r *Registry) LookupAny(code string) (domain.Currency, error) {
	matches, err := r.Candidates(code)
	if err != nil {
		return domain.Currency{}, err
	}
	switch len(matches) {
	case 0:
		return domain.Currency{}, fmt.Errorf("%w: %s in any namespace", domain.ErrNotFound, code)
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = string(m.Namespace())
	}
	return domain.Currency{}, fmt.Errorf("%w: %s is defined in %s", domain.ErrAmbiguousCurrency,
		strings.TrimSpace(code), strings.Join(names, ", "))
}

// Candidates returns every definition of code, ordered by namespace.
func (r *Registry) Candidates(code string) ([]domain.Currency, error) {
	code, err := checkArg("code", code)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Currency
	for ns := range r.namespaces {
		if c, ok := r.currencies[shared.Key(ns, code)]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Namespace() < out[j].Namespace() })
	return out, nil
}

// ResolveISO maps a code to its current ISO-4217 definition. Region and locale
// integrations build on it.
func (r *Registry) ResolveISO(code string) (domain.Currency, error) {
	return r.Lookup(code, shared.ISO4217)
}

// Register inserts c if its namespace and code are free. An existing entry is
// never replaced.
func (r *Registry) Register(c domain.Currency) error {
	if c.IsZero() {
		return fmt.Errorf("%w: cannot register an empty definition", domain.ErrInvalidArgument)
	}
	key := c.Key()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.currencies[key]; exists {
		return fmt.Errorf("%w: %s in namespace %s", domain.ErrAlreadyExists, c.Code(), c.Namespace())
	}
	r.currencies[key] = c
	r.namespaces[c.Namespace()]++
	return nil
}

// Unregister removes and returns the definition of code in ns.
func (r *Registry) Unregister(code string, ns shared.Namespace) (domain.Currency, error) {
	code, err := checkArg("code", code)
	if err != nil {
		return domain.Currency{}, err
	}
	nsName, err := checkArg("namespace", string(ns))
	if err != nil {
		return domain.Currency{}, err
	}
	ns = shared.Namespace(nsName)
	key := shared.Key(ns, code)

	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.currencies[key]
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: %s in namespace %s", domain.ErrNotFound, code, ns)
	}
	delete(r.currencies, key)
	if r.namespaces[ns]--; r.namespaces[ns] <= 0 {
		delete(r.namespaces, ns)
	}
	return c, nil
}

// List returns a snapshot of all definitions, ordered by namespace then code.
func (r *Registry) List() []domain.Currency {
	return r.collect(func(domain.Currency) bool { return true })
}

// ListNamespace returns a snapshot of the definitions in ns, ordered by code.
func (r *Registry) ListNamespace(ns shared.Namespace) []domain.Currency {
	return r.collect(func(c domain.Currency) bool { return c.Namespace() == ns })
}

func (r *Registry) collect(keep func(domain.Currency) bool) []domain.Currency {
	r.mu.RLock()
	out := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		if keep(c) {
			out = append(out, c)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Namespace() != out[j].Namespace() {
			return out[i].Namespace() < out[j].Namespace()
		}
		return out[i].Code() < out[j].Code()
	})
	return out
}

// Namespaces lists the namespaces holding at least one definition.
func (r *Registry) Namespaces() []shared.Namespace {
	r.mu.RLock()
	out := make([]shared.Namespace, 0, len(r.namespaces))
	for ns := range r.namespaces {
		out = append(out, ns)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.currencies)
}

func (r *Registry) TryLookup(code string, ns shared.Namespace) (domain.Currency, bool) {
	c, err := r.Lookup(code, ns)
	return c, err == nil
}

func (r *Registry) TryLookupAny(code string) (domain.Currency, bool) {
	c, err := r.LookupAny(code)
	return c, err == nil
}

func (r *Registry) TryRegister(c domain.Currency) bool {
	return r.Register(c) == nil
}

func (r *Registry) TryUnregister(code string, ns shared.Namespace) (domain.Currency, bool) {
	c, err := r.Unregister(code, ns)
	return c, err == nil
}

// MustLookup is like Lookup but panics on failure.
func (r *Registry) MustLookup(code string, ns shared.Namespace) domain.Currency {
	c, err := r.Lookup(code, ns)
	if err != nil {
		panic(err)
	}
	return c
}

// MustRegister is like Register but panics on failure.
func (r *Registry) MustRegister(c domain.Currency) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}
