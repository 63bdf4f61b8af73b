package cache

import (
	"context"
	"time"
)

// Limiter is a fixed-window rate limiter over the Store: INCR the
// window key, EXPIRE it on the first hit, reject once the count passes
// the maximum. A burst exactly at window rollover can exceed the
// nominal maximum; that boundary unfairness is accepted.
type Limiter struct {
	store  Store
	max    int64
	window time.Duration
}

func NewLimiter(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{store: store, max: int64(max), window: window}
}

// Allow counts one request against key. When the limit is exceeded it
// returns false along with an approximate wait until the window
// resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	count, err := l.store.Incr(ctx, key)
	if err != nil {
		return false, 0, err
	}

	if count == 1 {
		if err := l.store.Expire(ctx, key, l.window); err != nil {
			return false, 0, err
		}
	}

	if count <= l.max {
		return true, 0, nil
	}

	retryAfter := l.window
	if remaining, ok, err := l.store.TTL(ctx, key); err == nil && ok {
		retryAfter = remaining
	}
	return false, retryAfter, nil
}
