package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
)

// ConversationRepository stores per-session chat history in Redis.
// History is keyed by session id, never shared across sessions, and
// expires together with the session.
type ConversationRepository struct {
	client *redis.Client
	exp    time.Duration // history lifetime, matches the session lifetime
}

// NewConversationRepository creates a new repository instance.
func NewConversationRepository(client *redis.Client, expiration time.Duration) *ConversationRepository {
	return &ConversationRepository{
		client: client,
		exp:    expiration,
	}
}

// GetTurns returns the conversation history for a session, oldest first.
// An absent key means an empty conversation, not an error.
func (r *ConversationRepository) GetTurns(ctx context.Context, sessionID uuid.UUID) ([]models.ChatTurn, error) {
	key := fmt.Sprintf("conversation:%s", sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var turns []models.ChatTurn
	if err := json.Unmarshal([]byte(val), &turns); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(turns),
		"error", nil,
	)

	return turns, nil
}

// AppendTurns appends turns to the session's history and refreshes its expiration.
func (r *ConversationRepository) AppendTurns(ctx context.Context, sessionID uuid.UUID, turns ...models.ChatTurn) error {
	key := fmt.Sprintf("conversation:%s", sessionID)

	existing, err := r.GetTurns(ctx, sessionID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(append(existing, turns...))
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, string(data), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"appended", len(turns),
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete removes the conversation history for a session.
func (r *ConversationRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := fmt.Sprintf("conversation:%s", sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
