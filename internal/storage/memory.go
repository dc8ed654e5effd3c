package storage

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store. It backs tests and is also the
// fallback backend when no data directory is configured, in which case
// submitted listings simply do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every Set return an error; tests use it to
	// exercise the append failure path.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
