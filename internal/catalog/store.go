package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/storage"
)

// ErrCarNotFound is returned by lookups for an id absent from both the
// seed set and the submitted set.
var ErrCarNotFound = errors.New("catalog: car not found")

// Store merges the compiled-in seed cars with the user-submitted cars
// persisted under storage.KeyCustomCars. Reads are fail-open: a corrupt
// or unreadable blob degrades the catalog to seed-only instead of
// blocking browsing.
type Store struct {
	kv storage.Store

	// mu serializes the read-modify-write in Append. Single callers see
	// the same last-write-wins behavior as before; overlapping appends
	// can no longer clobber each other.
	mu sync.Mutex
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// All returns every car in the catalog: submitted cars first
// (most recently submitted at the head), then seed cars in declaration
// order. It never fails; storage faults are logged and swallowed.
func (s *Store) All(ctx context.Context) []model.Car {
	return append(s.submitted(ctx), SeedCars()...)
}

// Submitted returns only the user-submitted cars, newest first.
func (s *Store) Submitted(ctx context.Context) []model.Car {
	return s.submitted(ctx)
}

func (s *Store) submitted(ctx context.Context) []model.Car {
	raw, err := s.kv.Get(ctx, storage.KeyCustomCars)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("catalog: read submitted cars failed: %v", err)
		}
		return nil
	}
	var cars []model.Car
	if err := json.Unmarshal(raw, &cars); err != nil {
		log.Printf("catalog: submitted cars blob is corrupt, serving seed only: %v", err)
		return nil
	}
	return cars
}

// Append writes car to the front of the persisted list and commits the
// whole list back under the same key. Failures are returned to the
// caller and not retried; the seed set is never touched.
func (s *Store) Append(ctx context.Context, car model.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars := append([]model.Car{car}, s.submitted(ctx)...)
	raw, err := json.Marshal(cars)
	if err != nil {
		return fmt.Errorf("encode submitted cars: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyCustomCars, raw); err != nil {
		return fmt.Errorf("persist submitted cars: %w", err)
	}
	return nil
}
