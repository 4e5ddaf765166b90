package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	teardown := func() {
		rdb.Close()
		redisC.Terminate(ctx)
	}

	return rdb, teardown
}

func TestSessionRepository(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSessionRepository(rdb, 2*time.Second)

	t.Run("Save and Get session", func(t *testing.T) {
		sessionID := uuid.New()
		userID := uuid.New()

		err := repo.Save(ctx, sessionID, userID)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, sessionID)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("Unknown session", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete session", func(t *testing.T) {
		sessionID := uuid.New()
		userID := uuid.New()

		assert.NoError(t, repo.Save(ctx, sessionID, userID))
		assert.NoError(t, repo.Delete(ctx, sessionID))

		_, err := repo.Get(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete absent session is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, uuid.New()))
	})

	t.Run("Session expires", func(t *testing.T) {
		sessionID := uuid.New()
		userID := uuid.New()

		assert.NoError(t, repo.Save(ctx, sessionID, userID))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
