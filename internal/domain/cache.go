package domain

import (
	"context"
	"time"
)

// CacheError is an error originating from the cache layer.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key or hash field is not present.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the port the result cache and the embedding cache depend on.
// The hash operations exist for the result cache, which keeps every
// cached assessment of one question inside a single hash so invalidating
// the question is one Delete.
type Cache interface {
	// Get retrieves a plain value. Returns ErrCacheMiss when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a plain value. A zero expiration means no TTL.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// HGet retrieves one field of a hash. Returns ErrCacheMiss when the
	// key or field is absent.
	HGet(ctx context.Context, key, field string) (string, error)

	// HGetAll retrieves every field of a hash.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet stores one field of a hash.
	HSet(ctx context.Context, key string, field string, value string) error

	// Expire refreshes the TTL of a key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
