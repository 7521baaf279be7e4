package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// FlashCacheRepository queues one-time notices in Redis until the next
// rendered page picks them up.
type FlashCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long unread notices survive
}

// NewFlashCacheRepository creates a new repository instance with the
// given notice TTL.
func NewFlashCacheRepository(client *redis.Client, expiration time.Duration) *FlashCacheRepository {
	return &FlashCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Push appends a notice to the session's queue.
func (r *FlashCacheRepository) Push(ctx context.Context, sessionID string, flash models.Flash) error {
	key := fmt.Sprintf("flash:%s", sessionID)

	data, err := json.Marshal(flash)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, r.exp)
	_, err = pipe.Exec(ctx)

	logger.Log.Infow("flash pushed",
		"key", key,
		"kind", flash.Kind,
		"error", err,
	)

	return err
}

// PopAll drains and returns the session's queued notices. Each notice
// is surfaced exactly once.
func (r *FlashCacheRepository) PopAll(ctx context.Context, sessionID string) ([]models.Flash, error) {
	key := fmt.Sprintf("flash:%s", sessionID)

	pipe := r.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	_, err := pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Infow("flash pop failed", "key", key, "error", err)
		return nil, err
	}

	raw := rangeCmd.Val()
	flashes := make([]models.Flash, 0, len(raw))
	for _, item := range raw {
		var flash models.Flash
		if err := json.Unmarshal([]byte(item), &flash); err != nil {
			logger.Log.Errorw("dropping malformed flash entry", "key", key, "error", err)
			continue
		}
		flashes = append(flashes, flash)
	}

	logger.Log.Infow("flash popped",
		"key", key,
		"count", len(flashes),
	)

	return flashes, nil
}

// TokenDenylistRepository stores revoked session token ids in Redis so
// logout takes effect before the token expires.
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

// Revoke marks a token id as dead for the remainder of its lifetime.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}
	key := fmt.Sprintf("denylist:%s", tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoked",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token id has been revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf("denylist:%s", tokenID)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("denylist lookup failed", "key", key, "error", err)
		return false, err
	}
	return true, nil
}
