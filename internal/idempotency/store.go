// Package idempotency de-duplicates client retries keyed by an
// Idempotency-Key header.
package idempotency

import (
	"context"
	"time"
)

// Store reserves keys for a limited time.
type Store interface {
	// Acquire reserves key for ttl. It reports false when the key is
	// already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops a reservation so the key can be retried.
	Release(ctx context.Context, key string) error
	Close() error
}
