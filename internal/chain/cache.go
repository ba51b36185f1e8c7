package chain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores verification results for finalized transactions. Finalized
// transactions are immutable, so a cached outcome never goes stale.
type Cache interface {
	Get(ctx context.Context, signature string) (*domain.VerifyResult, error)
	Set(ctx context.Context, signature string, result *domain.VerifyResult) error
}

type VerificationCache struct {
	client *redis.Client
	exp    time.Duration
}

func NewVerificationCache(client *redis.Client, expiration time.Duration) *VerificationCache {
	return &VerificationCache{
		client: client,
		exp:    expiration,
	}
}

func (c *VerificationCache) key(signature string) string {
	return "verify:" + signature
}

func (c *VerificationCache) Get(ctx context.Context, signature string) (*domain.VerifyResult, error) {
	val, err := c.client.Get(ctx, c.key(signature)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var result domain.VerifyResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		zap.L().Warn("can't decode cached verification", zap.Error(err))
		return nil, nil
	}
	return &result, nil
}

func (c *VerificationCache) Set(ctx context.Context, signature string, result *domain.VerifyResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(signature), val, c.exp).Err()
}
