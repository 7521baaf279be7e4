package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hikersclub/campgrounds/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})

	for i := 0; i < 10; i++ {
		if err = client.Ping(context.Background()).Err(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestFlashCacheRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewFlashCacheRepository(client, time.Minute)
	ctx := context.Background()
	sessionID := "session-1"

	t.Run("push then pop preserves order", func(t *testing.T) {
		require.NoError(t, repo.Push(ctx, sessionID, models.Flash{Kind: models.FlashSuccess, Message: "Welcome to CampGrounds!"}))
		require.NoError(t, repo.Push(ctx, sessionID, models.Flash{Kind: models.FlashError, Message: "Cannot find that Campground"}))

		flashes, err := repo.PopAll(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, flashes, 2)
		assert.Equal(t, models.FlashSuccess, flashes[0].Kind)
		assert.Equal(t, "Welcome to CampGrounds!", flashes[0].Message)
		assert.Equal(t, models.FlashError, flashes[1].Kind)
	})

	t.Run("pop surfaces each notice once", func(t *testing.T) {
		flashes, err := repo.PopAll(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, flashes)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		require.NoError(t, repo.Push(ctx, "session-a", models.Flash{Kind: models.FlashSuccess, Message: "a"}))

		flashes, err := repo.PopAll(ctx, "session-b")
		require.NoError(t, err)
		assert.Empty(t, flashes)

		flashes, err = repo.PopAll(ctx, "session-a")
		require.NoError(t, err)
		assert.Len(t, flashes, 1)
	})

	t.Run("unread notices expire", func(t *testing.T) {
		short := NewFlashCacheRepository(client, time.Second)
		require.NoError(t, short.Push(ctx, "session-ttl", models.Flash{Kind: models.FlashSuccess, Message: "stale"}))

		time.Sleep(1500 * time.Millisecond)

		flashes, err := short.PopAll(ctx, "session-ttl")
		require.NoError(t, err)
		assert.Empty(t, flashes)
	})
}

func TestTokenDenylistRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewTokenDenylistRepository(client)
	ctx := context.Background()

	t.Run("revoked token is reported", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-1", time.Minute))

		revoked, err := repo.IsRevoked(ctx, "token-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "token-unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("expired ttl is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-expired", 0))

		revoked, err := repo.IsRevoked(ctx, "token-expired")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revocation lapses with the token lifetime", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-short", time.Second))

		time.Sleep(1500 * time.Millisecond)

		revoked, err := repo.IsRevoked(ctx, "token-short")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
