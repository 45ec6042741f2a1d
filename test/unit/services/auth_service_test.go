package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chefpantry/chefpantry/configs"
	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/auth"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func testJWTConfig() *configs.JWTConfig {
	return &configs.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func activeUser(password string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &user.User{
		ID:           uuid.New(),
		Email:        "chef@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ada",
		LastName:     "Cook",
		Role:         user.RoleChef,
		IsActive:     true,
	}
}

func TestAuthService_LoginIssuesTokenPair(t *testing.T) {
	u := activeUser("correct-horse")
	userRepo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	var storedToken string
	tokenRepo := &mocks.TokenRepositoryMock{
		StoreRefreshTokenFn: func(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
			require.Equal(t, u.ID, userID)
			storedToken = token
			return nil
		},
	}

	svc := impl.NewAuthService(userRepo, tokenRepo, testJWTConfig(), logrus.New())
	tokens, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.Equal(t, storedToken, tokens.RefreshToken)
	require.Equal(t, "Bearer", tokens.TokenType)
	require.Equal(t, int64(3600), tokens.ExpiresIn)

	claims, err := svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, user.RoleChef, claims.Role)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	u := activeUser("correct-horse")
	userRepo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	svc := impl.NewAuthService(userRepo, &mocks.TokenRepositoryMock{}, testJWTConfig(), logrus.New())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "battery-staple"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid credentials")

	// Unknown emails get the same generic error.
	userRepo.GetByEmailFn = nil
	_, err = svc.Login(context.Background(), &auth.LoginRequest{Email: "nobody@example.com", Password: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_LoginRejectsDisabledAccount(t *testing.T) {
	u := activeUser("correct-horse")
	u.IsActive = false
	userRepo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	svc := impl.NewAuthService(userRepo, &mocks.TokenRepositoryMock{}, testJWTConfig(), logrus.New())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "correct-horse"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disabled")
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	u := activeUser("pw")
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
	}
	deleted := ""
	tokenRepo := &mocks.TokenRepositoryMock{
		GetRefreshTokenFn: func(ctx context.Context, token string) (*ports.RefreshToken, error) {
			return &ports.RefreshToken{UserID: u.ID, Token: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
		DeleteRefreshTokenFn: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}

	svc := impl.NewAuthService(userRepo, tokenRepo, testJWTConfig(), logrus.New())
	tokens, err := svc.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEqual(t, "old-refresh", tokens.RefreshToken)
	if deleted != "old-refresh" {
		t.Fatalf("expected the used refresh token to be deleted, got %q", deleted)
	}
}

func TestAuthService_RefreshRejectsExpiredToken(t *testing.T) {
	tokenRepo := &mocks.TokenRepositoryMock{
		GetRefreshTokenFn: func(ctx context.Context, token string) (*ports.RefreshToken, error) {
			return &ports.RefreshToken{UserID: uuid.New(), Token: token, ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
	}
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, tokenRepo, testJWTConfig(), logrus.New())

	_, err := svc.RefreshToken(context.Background(), "stale")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
}

func TestAuthService_ValidateRejectsBlacklistedToken(t *testing.T) {
	u := activeUser("pw")
	userRepo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	blacklisted := false
	tokenRepo := &mocks.TokenRepositoryMock{
		IsTokenBlacklistedFn: func(ctx context.Context, token string) (bool, error) { return blacklisted, nil },
	}
	svc := impl.NewAuthService(userRepo, tokenRepo, testJWTConfig(), logrus.New())

	tokens, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "pw"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)

	blacklisted = true
	_, err = svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "revoked")
}

func TestAuthService_LogoutBlacklistsAccessTokenAndRevokesRefresh(t *testing.T) {
	userID := uuid.New()
	var blacklistedToken string
	revokedUser := uuid.Nil
	tokenRepo := &mocks.TokenRepositoryMock{
		BlacklistTokenFn: func(ctx context.Context, token string, expiresAt time.Time) error {
			blacklistedToken = token
			if !expiresAt.After(time.Now()) {
				t.Fatalf("blacklist entry must outlive the token, got %v", expiresAt)
			}
			return nil
		},
		DeleteUserRefreshTokensFn: func(ctx context.Context, id uuid.UUID) error {
			revokedUser = id
			return nil
		},
	}
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, tokenRepo, testJWTConfig(), logrus.New())

	err := svc.Logout(context.Background(), userID, "access-abc")
	require.NoError(t, err)
	require.Equal(t, "access-abc", blacklistedToken)
	require.Equal(t, userID, revokedUser)
}
