package port

import "context"

// KeyValueStore is the local durable storage boundary: named collections
// read and written as opaque blobs. Backends are swappable; tests use an
// in-memory fake.
type KeyValueStore interface {
	// Get returns the stored value for key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
