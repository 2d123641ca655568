// Package storage holds document content in a content-addressable store.
package storage

import (
	"context"

	"github.com/ipfs/go-cid"
)

// CAS is a minimal content-addressable storage interface.
//
// Contract:
//   - Put is idempotent.
//   - Stored objects are immutable.
//   - The CID is CIDv1 raw + sha2-256 of the bytes written.
//   - Get returns ErrNotFound when the CID is absent.
type CAS interface {
	Put(ctx context.Context, data []byte) (cid.Cid, error)
	Get(ctx context.Context, id cid.Cid) ([]byte, error)
	Has(ctx context.Context, id cid.Cid) (bool, error)
}
