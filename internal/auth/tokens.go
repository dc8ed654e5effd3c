package auth

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/getaroag/getaroag-api/internal/repository"
)

// ErrInvalidRefresh covers every refresh-token failure: unknown hash,
// expired, revoked. Callers get no finer detail on purpose.
var ErrInvalidRefresh = errors.New("auth: invalid refresh token")

// TokenStore persists refresh tokens by hash. Subjects are opaque
// strings (profile user ids or database account ids).
type TokenStore interface {
	StoreRefresh(ctx context.Context, subject, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForSubject(ctx context.Context, subject string) error
}

type memoryToken struct {
	subject string
	exp     time.Time
}

// MemoryTokenStore keeps refresh tokens in process memory. It backs the
// mock-verifier mode, where sessions are not expected to survive a
// restart anyway.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: map[string]memoryToken{}}
}

func (s *MemoryTokenStore) StoreRefresh(ctx context.Context, subject, tokenHash string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenHash] = memoryToken{subject: subject, exp: exp}
	return nil
}

func (s *MemoryTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenHash]
	if !ok || time.Now().UTC().After(t.exp) {
		return "", ErrInvalidRefresh
	}
	return t.subject, nil
}

func (s *MemoryTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenHash)
	return nil
}

func (s *MemoryTokenStore) RevokeAllForSubject(ctx context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, t := range s.tokens {
		if t.subject == subject {
			delete(s.tokens, h)
		}
	}
	return nil
}

// DBTokenStore adapts the SQL refresh-token repository to TokenStore.
type DBTokenStore struct {
	Repo *repository.TokenRepo
}

func NewDBTokenStore(repo *repository.TokenRepo) *DBTokenStore { return &DBTokenStore{Repo: repo} }

func (s *DBTokenStore) StoreRefresh(ctx context.Context, subject, tokenHash string, exp time.Time) error {
	id, err := accountID(subject)
	if err != nil {
		return err
	}
	return s.Repo.StoreRefresh(ctx, id, tokenHash, exp)
}

func (s *DBTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	id, err := s.Repo.ValidateRefresh(ctx, tokenHash)
	if err != nil {
		return "", ErrInvalidRefresh
	}
	return "db_" + strconv.FormatUint(id, 10), nil
}

func (s *DBTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	return s.Repo.RevokeByHash(ctx, tokenHash)
}

func (s *DBTokenStore) RevokeAllForSubject(ctx context.Context, subject string) error {
	id, err := accountID(subject)
	if err != nil {
		return err
	}
	return s.Repo.RevokeAllForAccount(ctx, id)
}

// accountID parses the numeric account id out of a "db_<id>" subject.
func accountID(subject string) (uint64, error) {
	const prefix = "db_"
	if len(subject) <= len(prefix) || subject[:len(prefix)] != prefix {
		return 0, ErrInvalidRefresh
	}
	return strconv.ParseUint(subject[len(prefix):], 10, 64)
}
