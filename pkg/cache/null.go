package cache

import "context"

// NullStore discards everything. It backs --no-cache and keeps tests
// away from the real cache directory.
type NullStore struct{}

// NewNullStore creates a cache that never stores anything.
func NewNullStore() Cache {
	return NullStore{}
}

// Get always misses.
func (NullStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the artifact.
func (NullStore) Set(ctx context.Context, key string, data []byte) error {
	return nil
}

// Delete does nothing.
func (NullStore) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (NullStore) Close() error {
	return nil
}

var _ Cache = NullStore{}
