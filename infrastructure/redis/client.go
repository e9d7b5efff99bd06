package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DsDac0/Website/pkg/config"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/metrics"
)

const (
	lockTTL        = 10 * time.Second
	lockRetryDelay = 100 * time.Millisecond
	lockRetries    = 20
)

// Client wraps go-redis with the JSON cache helpers the catalog uses.
type Client struct {
	rdb     *redis.Client
	metrics *metrics.AppMetrics
}

func NewClient(cfg *config.RedisConfig, m *metrics.AppMetrics) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	if m == nil {
		m = metrics.NewNoop()
	}
	logger.Info("Redis connected", "addr", opt.Addr, "db", opt.DB)
	return &Client{rdb: rdb, metrics: m}, nil
}

// NewClientFromRedis wraps an existing go-redis client.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb, metrics: metrics.NewNoop()}
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, expiration).Err()
}

// GetJSON returns redis.Nil when the key is absent.
func (c *Client) GetJSON(ctx context.Context, key string, target interface{}) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// GetOrSet reads key into target. On a miss one caller takes a short lock and
// runs getter while the others wait for the value to appear.
func (c *Client) GetOrSet(ctx context.Context, key string, target interface{}, ttl time.Duration, getter func() (interface{}, error)) error {
	for attempt := 0; ; attempt++ {
		err := c.GetJSON(ctx, key, target)
		if err == nil {
			c.metrics.RecordCache(ctx, key, true)
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			return err
		}

		lockKey := "lock:" + key
		locked, err := c.rdb.SetNX(ctx, lockKey, "1", lockTTL).Result()
		if err != nil {
			return err
		}
		if locked {
			defer c.rdb.Del(context.WithoutCancel(ctx), lockKey)
			break
		}
		if attempt >= lockRetries {
			// Lock holder is slow; serve from the source without caching.
			return fill(target, getter)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	c.metrics.RecordCache(ctx, key, false)

	result, err := getter()
	if err != nil {
		return err
	}
	if err := c.SetJSON(ctx, key, result, ttl); err != nil {
		logger.WarnContext(ctx, "Failed to cache result", "key", key, "error", err)
	}
	return copyJSON(result, target)
}

func fill(target interface{}, getter func() (interface{}, error)) error {
	result, err := getter()
	if err != nil {
		return err
	}
	return copyJSON(result, target)
}

func copyJSON(src, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
