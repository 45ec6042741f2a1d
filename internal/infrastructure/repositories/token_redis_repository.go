package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/ports"
)

const (
	tokenPrefix = "chefpantry_tokens"
)

// TokenRedisRepository provides Redis-backed storage for refresh tokens and
// the access-token blacklist. Expiry is enforced by key TTLs.
type TokenRedisRepository struct {
	client redis.Cmdable
	logger *logrus.Logger
}

// NewTokenRedisRepository creates a new Redis token repository
func NewTokenRedisRepository(client redis.Cmdable, logger *logrus.Logger) *TokenRedisRepository {
	return &TokenRedisRepository{client: client, logger: logger}
}

func refreshKey(token string) string {
	return fmt.Sprintf("%s:refresh:%s", tokenPrefix, token)
}

func userTokensKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:user:%s:refresh", tokenPrefix, userID)
}

func blacklistKey(token string) string {
	return fmt.Sprintf("%s:blacklist:%s", tokenPrefix, token)
}

// StoreRefreshToken stores a refresh token with its expiry
func (r *TokenRedisRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}

	stored := &ports.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh token: %w", err)
	}

	if err = r.client.Set(ctx, refreshKey(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token in Redis: %w", err)
	}
	// Index by user so all sessions can be revoked on deactivation.
	userKey := userTokensKey(userID)
	if err = r.client.SAdd(ctx, userKey, token).Err(); err != nil {
		return fmt.Errorf("failed to add refresh token to user mapping: %w", err)
	}
	_ = r.client.Expire(ctx, userKey, ttl+time.Hour)
	return nil
}

// GetRefreshToken retrieves a stored refresh token
func (r *TokenRedisRepository) GetRefreshToken(ctx context.Context, token string) (*ports.RefreshToken, error) {
	data, err := r.client.Get(ctx, refreshKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("refresh token not found or expired")
		}
		return nil, fmt.Errorf("failed to get refresh token from Redis: %w", err)
	}

	var stored ports.RefreshToken
	if err = json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refresh token: %w", err)
	}
	return &stored, nil
}

// DeleteRefreshToken removes a refresh token
func (r *TokenRedisRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	stored, err := r.GetRefreshToken(ctx, token)
	if err != nil {
		// Already gone; deletion is idempotent.
		return nil
	}
	if err = r.client.Del(ctx, refreshKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if err = r.client.SRem(ctx, userTokensKey(stored.UserID), token).Err(); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": stored.UserID}).WithError(err).Warn("failed to remove refresh token from user mapping")
		}
	}
	return nil
}

// DeleteUserRefreshTokens revokes every refresh token held by a user
func (r *TokenRedisRepository) DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	userKey := userTokensKey(userID)
	tokens, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list user refresh tokens: %w", err)
	}
	for _, token := range tokens {
		if err := r.client.Del(ctx, refreshKey(token)).Err(); err != nil {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Warn("failed to delete user refresh token")
			}
		}
	}
	return r.client.Del(ctx, userKey).Err()
}

// BlacklistToken marks an access token as revoked until it would expire anyway
func (r *TokenRedisRepository) BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token already expired; nothing to blacklist.
		return nil
	}
	if err := r.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether an access token was revoked
func (r *TokenRedisRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, blacklistKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return true, nil
}
