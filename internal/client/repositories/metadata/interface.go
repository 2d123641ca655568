// Package metadata is the client's local key/value store. It holds the
// identity seed, the cached profile document id and the signed-in account.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store. Get returns (nil, nil) when
// the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
