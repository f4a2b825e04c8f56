package memory

import (
	"context"
	"sync"
)

type stateKey struct {
	visitorID string
	key       string
}

// StateStore keeps visitor state for the life of the process.
type StateStore struct {
	mu    sync.RWMutex
	items map[stateKey]string
}

func NewStateStore() *StateStore {
	return &StateStore{
		items: make(map[stateKey]string),
	}
}

func (s *StateStore) Get(_ context.Context, visitorID, key string) (string, bool, error) {
	s.mu.RLock()
	v, ok := s.items[stateKey{visitorID, key}]
	s.mu.RUnlock()

	return v, ok, nil
}

func (s *StateStore) Set(_ context.Context, visitorID, key, value string) error {
	s.mu.Lock()
	s.items[stateKey{visitorID, key}] = value
	s.mu.Unlock()

	return nil
}

func (s *StateStore) Ping(context.Context) error {
	return nil
}
