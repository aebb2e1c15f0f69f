// Package redis wraps the go-redis client used by the player store.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// DefaultPingTimeout bounds the connectivity check done at startup
const DefaultPingTimeout = 3 * time.Second

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily, call Ping to fail fast.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.DB < 0 {
		return nil, errors.InvalidArgumentf("redis: invalid db %d", opts.DB)
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}

// Ping checks the server answers within DefaultPingTimeout
func Ping(ctx context.Context, client Client) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
