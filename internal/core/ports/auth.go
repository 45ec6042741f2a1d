package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/auth"
)

// RefreshToken is a stored refresh token with its owner and expiry.
type RefreshToken struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenRepository stores refresh tokens and the access-token blacklist.
// Implementations are expected to honor expiry (e.g. via Redis TTLs).
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (*auth.AuthTokens, error)
	Logout(ctx context.Context, userID uuid.UUID, accessToken string) error
	// ValidateToken parses and verifies an access token, rejecting
	// blacklisted tokens.
	ValidateToken(ctx context.Context, accessToken string) (*auth.Claims, error)
}
