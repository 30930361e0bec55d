// Package cache keeps the latest nisab snapshot per currency in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segyhp/zakat-engine/internal/domain"
)

const (
	keyPrefix      = "nisab:latest:"
	maxSetAttempts = 3
)

// NisabCache stores the latest rates per currency. Get returns nil, nil on a miss.
type NisabCache interface {
	Get(ctx context.Context, currency string) (*domain.NisabRates, error)
	Set(ctx context.Context, rates *domain.NisabRates) error
	Invalidate(ctx context.Context, currency string) error
}

type redisNisabCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisNisabCache(client *redis.Client, ttl time.Duration) NisabCache {
	return &redisNisabCache{client: client, ttl: ttl}
}

func key(currency string) string {
	return keyPrefix + currency
}

func (c *redisNisabCache) Get(ctx context.Context, currency string) (*domain.NisabRates, error) {
	raw, err := c.client.Get(ctx, key(currency)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get nisab rates %s: %w", currency, err)
	}

	var rates domain.NisabRates
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("decode nisab rates %s: %w", currency, err)
	}

	return &rates, nil
}

// Set stores rates unless the cached entry is newer. The compare and write run
// under WATCH so a slow reader cannot replace a fresher snapshot.
func (c *redisNisabCache) Set(ctx context.Context, rates *domain.NisabRates) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode nisab rates %s: %w", rates.Currency, err)
	}

	k := key(rates.Currency)
	write := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, k).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil && supersededBy(current, rates) {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, raw, c.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		err = c.client.Watch(ctx, write, k)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("set nisab rates %s: %w", rates.Currency, err)
}

// supersededBy reports whether the cached value is newer than rates.
// An undecodable cached value is treated as replaceable.
func supersededBy(current []byte, rates *domain.NisabRates) bool {
	var cached domain.NisabRates
	if err := json.Unmarshal(current, &cached); err != nil {
		return false
	}
	return cached.NewerThan(rates)
}

func (c *redisNisabCache) Invalidate(ctx context.Context, currency string) error {
	return c.client.Del(ctx, key(currency)).Err()
}

type noopNisabCache struct{}

// NewNoopNisabCache returns a cache that never hits, for deployments without redis.
func NewNoopNisabCache() NisabCache {
	return noopNisabCache{}
}

func (noopNisabCache) Get(context.Context, string) (*domain.NisabRates, error) {
	return nil, nil
}

func (noopNisabCache) Set(context.Context, *domain.NisabRates) error {
	return nil
}

func (noopNisabCache) Invalidate(context.Context, string) error {
	return nil
}
