package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/config"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.SessionStore) {
	t.Helper()
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 15, RefreshTTLDays: 7}
	sessions := auth.NewSessionStore(storage.NewMemoryStore())
	h := NewAuthHandler(cfg, auth.NewMockVerifier(0, "123456"), auth.NewMemoryTokenStore(), sessions)
	return h, sessions
}

func TestLoginIssuesTokensAndSession(t *testing.T) {
	h, sessions := newAuthHandler(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"can@example.com","password":"whatever"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, auth.DemoUser.ID, body.User.ID)
	assert.NotEmpty(t, body.Access.Token)
	assert.NotEmpty(t, body.Refresh.Token)

	user, err := sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, auth.DemoUser.Email, user.Email)
}

func TestLoginRequiresCredentials(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterThenVerify(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"new@example.com","password":"pw"}`, nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "verification code sent")

	rec = doJSON(t, h.VerifyCode, http.MethodPost, "/v1/auth/verify",
		`{"email":"new@example.com","code":"000000"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid verification code")

	rec = doJSON(t, h.VerifyCode, http.MethodPost, "/v1/auth/verify",
		`{"email":"new@example.com","code":"123456"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Access.Token)
}

func TestRefreshRotatesToken(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"can@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var login authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+login.Refresh.Token+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rotated struct {
		Refresh tokenPart `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rotated))
	assert.NotEqual(t, login.Refresh.Token, rotated.Refresh.Token)

	// The original token was revoked by rotation.
	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+login.Refresh.Token+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"never-issued"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesAndClearsSession(t *testing.T) {
	h, sessions := newAuthHandler(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"can@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var login authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = doJSON(t, h.Logout, http.MethodPost, "/v1/auth/logout",
		`{"refresh_token":"`+login.Refresh.Token+`"}`, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := sessions.Load(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoSession)

	rec = doJSON(t, h.Logout, http.MethodPost, "/v1/auth/logout",
		`{"refresh_token":"`+login.Refresh.Token+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
