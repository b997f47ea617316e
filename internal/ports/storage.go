package ports

import (
	"context"
	"time"
)

// PreferenceStore is a key/value store scoped to a browser profile.
// Values survive process restarts.
type PreferenceStore interface {
	// GetAll returns every stored key for the profile. Missing profiles yield an empty map.
	GetAll(ctx context.Context, profileID string) (map[string]string, error)
	// Set upserts the given keys.
	Set(ctx context.Context, profileID string, values map[string]string) error
}

// CacheRepository defines the interface for byte caching operations.
type CacheRepository interface {
	// Set stores a value with the given TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil when the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	Health(ctx context.Context) error
}
