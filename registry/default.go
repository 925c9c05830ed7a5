package registry

import (
	"sync"

	"currency-registry/shared"
)

type seedOptions struct {
	historic bool
}

// Option tunes NewISO4217.
type Option func(*seedOptions)

// WithoutHistoric leaves the ISO-4217-HISTORIC namespace out.
func WithoutHistoric() Option {
	return func(o *seedOptions) { o.historic = false }
}

// NewISO4217 returns a registry preloaded with the ISO-4217 tables.
// The seed data is static, so a failure here is a programming error.
func NewISO4217(opts ...Option) *Registry {
	o := seedOptions{historic: true}
	for _, opt := range opts {
		opt(&o)
	}

	r := New()
	if err := seed(r, shared.ISO4217, isoCurrent); err != nil {
		panic(err)
	}
	if o.historic {
		if err := seed(r, shared.ISO4217Historic, isoHistoric); err != nil {
			panic(err)
		}
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return NewISO4217() })

// Default is the process-wide registry, seeded on first use. Custom currencies
// registered here are visible to every caller.
func Default() *Registry {
	return defaultRegistry()
}
