// Package cidutil derives and parses the CIDs used for document identifiers
// and content addresses.
package cidutil

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ErrInvalid is returned when a string does not parse as a defined CID.
var ErrInvalid = errors.New("cidutil: invalid cid")

// CIDv1RawSHA256 returns the CIDv1 (raw codec, sha2-256) of data.
// Content bytes in the CAS are addressed this way.
func CIDv1RawSHA256(data []byte) (cid.Cid, error) {
	return sum(cid.Raw, data)
}

// CIDv1DagCBOR returns the CIDv1 (dag-cbor codec, sha2-256) of a CBOR record.
// Document identifiers are the CID of their genesis record.
func CIDv1DagCBOR(data []byte) (cid.Cid, error) {
	return sum(cid.DagCBOR, data)
}

// Parse decodes s and rejects undefined CIDs.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil || !id.Defined() {
		return cid.Undef, ErrInvalid
	}
	return id, nil
}

func sum(codec uint64, data []byte) (cid.Cid, error) {
	h, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(codec, h), nil
}
