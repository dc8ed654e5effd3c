package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/storage"
)

// ErrNoSession is returned by Load when no user record is persisted.
var ErrNoSession = errors.New("auth: no persisted session")

// SessionStore keeps the signed-in user record under the fixed session
// key, mirroring how the original client persisted its session blob. It
// is deliberately single-user.
type SessionStore struct {
	kv storage.Store
}

func NewSessionStore(kv storage.Store) *SessionStore {
	return &SessionStore{kv: kv}
}

// Save persists the user record, replacing any previous one.
func (s *SessionStore) Save(ctx context.Context, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Load returns the persisted user record. A missing or unreadable blob
// maps to ErrNoSession; corruption is not surfaced as a distinct case.
func (s *SessionStore) Load(ctx context.Context) (model.User, error) {
	raw, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		return model.User{}, ErrNoSession
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return model.User{}, ErrNoSession
	}
	return u, nil
}

// Clear removes the persisted user record.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyUser)
}
