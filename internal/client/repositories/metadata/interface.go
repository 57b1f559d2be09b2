// Package metadata is the local key/value store behind the session store.
// Each key holds a JSON document; the repository itself treats values as
// opaque bytes.
package metadata

import (
	"context"
)

// Repository persists opaque values by key.
//
// Get returns (nil, nil) for a missing key. SetMany writes all pairs or
// none. Delete ignores keys that do not exist.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
