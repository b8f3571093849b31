package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/auth"
	"github.com/staffhive/erp-backend-go/internal/pkg/jwt"
)

type stubAuthService struct {
	login auth.LoginResponse
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.login, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	return auth.RefreshResponse{}, auth.ErrInvalidToken
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func TestLoginCookieCarriesRefreshExpiry(t *testing.T) {
	now := time.Now()
	accessExpiresAt := now.Add(time.Hour).Unix()
	refreshExpiresAt := now.Add(168 * time.Hour).Unix()

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	handler := NewAuthHandler(&stubAuthService{login: auth.LoginResponse{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		ExpiresAt:        accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		UserID:           1,
		Email:            "hr@example.test",
		Role:             "hr",
	}}, jwtService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		bytes.NewBufferString(`{"email":"hr@example.test","password":"password123"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "refresh_token cookie not set")
	assert.Equal(t, "refresh", cookie.Value)
	// The cookie must live as long as the refresh token it carries, not as
	// long as the access token.
	assert.Equal(t, refreshExpiresAt, cookie.Expires.Unix())
	assert.NotEqual(t, accessExpiresAt, cookie.Expires.Unix())
}
