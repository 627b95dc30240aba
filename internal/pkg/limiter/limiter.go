// Package limiter provides a redis-backed fixed-window rate limiter,
// used to throttle verification code resends per account.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter answers whether an action identified by key may run now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// FixedWindow allows at most Limit actions per Window.
type FixedWindow struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewFixedWindow creates a limiter allowing limit actions per window.
func NewFixedWindow(client *redis.Client, limit int64, window time.Duration) *FixedWindow {
	return &FixedWindow{
		client: client,
		prefix: "limiter:",
		limit:  limit,
		window: window,
	}
}

// Allow increments the counter for key and reports whether the action
// is still within the window's budget.
func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	fk := l.prefix + key

	count, err := l.client.Incr(ctx, fk).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment limiter key: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, fk, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to expire limiter key: %w", err)
		}
	}

	return count <= l.limit, nil
}
