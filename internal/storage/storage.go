// Package storage provides the key-value backend the catalog and session
// stores persist into. The interface is deliberately tiny (whole values
// under fixed keys, no partial updates) so an in-memory fake can stand in
// for the bolt file during tests.
package storage

import (
	"context"
	"errors"
)

// Fixed keys shared by the application. Each write replaces the entire
// value under its key; there is no finer-grained transactional discipline.
const (
	KeyCustomCars = "getaroag_custom_cars"
	KeyUser       = "getaroag_user"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the pluggable persistence backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
