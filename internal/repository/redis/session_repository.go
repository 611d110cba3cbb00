package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps issued login tokens in Redis so logout can revoke
// them before the JWT itself expires.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:token:%s", token)
}

func userSessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func (r *SessionRepository) StoreSession(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	// reverse lookup so all of a user's sessions can be found
	if err := r.client.Set(ctx, userSessionKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session lookup: %w", err)
	}

	return nil
}

// ValidateSession resolves a token to its user ID, or errors when the token
// is unknown or expired.
func (r *SessionRepository) ValidateSession(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.New("session not found or expired")
		}
		return "", fmt.Errorf("failed to validate session: %w", err)
	}

	return userID, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, userID, token string) error {
	if err := r.client.Del(ctx, sessionKey(token), userSessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
