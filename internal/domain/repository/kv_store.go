package repository

import "context"

// KVStore is a string key-value store used to persist cart snapshots
// across sessions. Writes are last-writer-wins; implementations back it
// with a database table or an in-memory map for tests.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
