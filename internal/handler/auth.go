package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/config"
	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/repository"
	"github.com/getaroag/getaroag-api/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. The verifier
// decides whether credentials are checked for real or simulated; the
// handler neither knows nor cares which is active.
type AuthHandler struct {
	Cfg      config.Config
	Verifier auth.Verifier
	Tokens   auth.TokenStore
	Sessions *auth.SessionStore
}

func NewAuthHandler(cfg config.Config, v auth.Verifier, t auth.TokenStore, s *auth.SessionStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Verifier: v, Tokens: t, Sessions: s}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type verifyReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.User `json:"user"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// Login verifies credentials and returns a fresh token pair. The
// signed-in user record is persisted as the session blob.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Verifier.Verify(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	return h.issueTokens(c, ctx, http.StatusOK, user)
}

// Register starts the two-step registration: the account is provisioned
// and a verification code is "sent" (the demo code is fixed).
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Verifier.Register(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "verification code sent"})
}

// VerifyCode completes registration. A wrong code is rejected without
// signing anyone in.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/code required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Verifier.Confirm(ctx, req.Email, req.Code)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid verification code"})
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown account"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "verification failed"})
	}

	return h.issueTokens(c, ctx, http.StatusCreated, user)
}

// Refresh validates a refresh token by hash, revokes it and returns a
// new pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	subject, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, subject, "USER", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, subject, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access":  tokenPart{Token: access.Token, Expires: access.Exp},
		"refresh": tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}

// Logout revokes the supplied refresh token and clears the persisted
// session record.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	if err := h.Sessions.Clear(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in user's profile record.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.Sessions.Load(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) issueTokens(c echo.Context, ctx context.Context, status int, user model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, "USER", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}
	if err := h.Sessions.Save(ctx, user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	return c.JSON(status, authResp{
		User:    user,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}
