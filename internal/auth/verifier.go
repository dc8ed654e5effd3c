// Package auth provides pluggable credential verification. The catalog
// and submission core never depend on which verifier is active: the mock
// accepts anything after a fixed delay (the marketplace's demo mode),
// while the database verifier checks bcrypt hashes for real.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/repository"
	"github.com/getaroag/getaroag-api/internal/utils"
)

var (
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidCode is returned when the registration verification
	// code does not match.
	ErrInvalidCode = errors.New("auth: invalid verification code")
)

// DemoUser is the compiled-in profile the mock verifier signs in.
var DemoUser = model.User{
	ID:        "u1",
	Name:      "Can Yılmaz",
	Email:     "can@example.com",
	Phone:     "555 123 45 67",
	PhotoURL:  "https://picsum.photos/200/200",
	BannerURL: "https://picsum.photos/1200/300",
	IBAN:      "TR12 3456 7890 1234 5678 90",
}

// Verifier is the credential-verification capability behind the auth
// endpoints. Register begins a two-step registration (the verification
// code is delivered out of band); Confirm completes it.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, email, password string) error
	Confirm(ctx context.Context, email, code string) (model.User, error)
}

// MockVerifier simulates authentication: every login succeeds with the
// demo user after a fixed delay, and registration completes only with
// the hardcoded demo code.
type MockVerifier struct {
	Delay time.Duration
	Code  string
	User  model.User
}

func NewMockVerifier(delay time.Duration, code string) *MockVerifier {
	return &MockVerifier{Delay: delay, Code: code, User: DemoUser}
}

func (v *MockVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	if err := sleep(ctx, v.Delay); err != nil {
		return model.User{}, err
	}
	return v.User, nil
}

func (v *MockVerifier) Register(ctx context.Context, email, password string) error {
	return sleep(ctx, v.Delay)
}

func (v *MockVerifier) Confirm(ctx context.Context, email, code string) (model.User, error) {
	if code != v.Code {
		return model.User{}, ErrInvalidCode
	}
	return v.User, nil
}

// DBVerifier checks credentials against the accounts table.
type DBVerifier struct {
	Accounts   *repository.AccountRepo
	BcryptCost int
	Code       string
}

func NewDBVerifier(accounts *repository.AccountRepo, cost int, code string) *DBVerifier {
	return &DBVerifier{Accounts: accounts, BcryptCost: cost, Code: code}
}

func (v *DBVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	acc, err := v.Accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if !utils.VerifyPassword(acc.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return userFromAccount(acc), nil
}

func (v *DBVerifier) Register(ctx context.Context, email, password string) error {
	_, err := v.Accounts.Create(ctx, email, password, "USER", v.BcryptCost)
	return err
}

func (v *DBVerifier) Confirm(ctx context.Context, email, code string) (model.User, error) {
	if code != v.Code {
		return model.User{}, ErrInvalidCode
	}
	acc, err := v.Accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}
	return userFromAccount(acc), nil
}

func userFromAccount(acc model.Account) model.User {
	name := acc.Email
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	return model.User{
		ID:    fmt.Sprintf("db_%d", acc.ID),
		Name:  name,
		Email: acc.Email,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
