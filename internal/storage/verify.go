package storage

import (
	"github.com/ipfs/go-cid"

	"github.com/furball-art/furball/internal/cidutil"
)

// Verify checks that data hashes to id. Backends call it on every read.
func Verify(id cid.Cid, data []byte) error {
	got, err := cidutil.CIDv1RawSHA256(data)
	if err != nil {
		return err
	}
	if !got.Equals(id) {
		return ErrCIDMismatch
	}
	return nil
}
