package auth

import (
	"context"
	"errors"

	jwtlib "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhive/erp-backend-go/internal/domain/auth"
	"github.com/staffhive/erp-backend-go/internal/domain/user"
	"github.com/staffhive/erp-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{userRepo: userRepo, jwtService: jwtService}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error either way; never reveal whether the account exists.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		UserID:           u.ID,
		Email:            u.Email,
		Role:             string(u.Role),
		EmployeeID:       u.EmployeeID,
	}, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if err := jwtlib.Validate(token); err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired()) {
			return auth.RefreshResponse{}, auth.ErrTokenExpired
		}
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, int64(rawID))
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, err
	}
	return auth.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	// Revoke regardless of validity; an expired token in the revocation set
	// is harmless.
	s.jwtService.RevokeToken(refreshToken)
	return nil
}
