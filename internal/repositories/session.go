package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side sessions in Redis. The key expires
// with the session lifetime so stale sessions vanish without a reaper.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionRepository creates a new repository instance with the given session lifetime.
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

// Save stores a session id to user id mapping with expiration.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID) error {
	key := fmt.Sprintf("session:%s", sessionID)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", userID,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get resolves a session id to the authenticated user id.
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	key := fmt.Sprintf("session:%s", sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return uuid.Nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", userID,
		"error", nil,
	)

	return userID, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := fmt.Sprintf("session:%s", sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
