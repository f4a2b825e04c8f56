package selections

import (
	"context"
	"time"
)

const (
	KeyJoined = "joinedEvents"
	KeySaved  = "savedEvents"
)

// Store persists one string value per (visitor, key).
type Store interface {
	Get(ctx context.Context, visitorID, key string) (string, bool, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

// StoreObserver times store calls; *observability.Prom satisfies it.
type StoreObserver interface {
	ObserveStore(backend, op string, fn func() error) error
}

type observedStore struct {
	inner   Store
	backend string
	obs     StoreObserver
}

// WithObserver decorates s so every call is reported to obs.
func WithObserver(s Store, backend string, obs StoreObserver) Store {
	if obs == nil {
		return s
	}
	return &observedStore{inner: s, backend: backend, obs: obs}
}

func (s *observedStore) Get(ctx context.Context, visitorID, key string) (value string, ok bool, err error) {
	err = s.obs.ObserveStore(s.backend, "get", func() error {
		var inner error
		value, ok, inner = s.inner.Get(ctx, visitorID, key)
		return inner
	})
	return value, ok, err
}

func (s *observedStore) Set(ctx context.Context, visitorID, key, value string) error {
	return s.obs.ObserveStore(s.backend, "set", func() error {
		return s.inner.Set(ctx, visitorID, key, value)
	})
}

// storeTimeout bounds a single store round trip.
const storeTimeout = 2 * time.Second
