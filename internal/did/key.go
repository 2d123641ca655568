// Package did turns the local Identity Seed into the signing identity used
// on the document network: an ed25519 key published as a did:key.
package did

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-varint"
	"golang.org/x/crypto/hkdf"
)

// SeedSize is the length of the Identity Seed.
const SeedSize = 32

const (
	keyPrefix = "did:key:z"
	hkdfInfo  = "furball-did-ed25519-v1"

	// multicodec code for an ed25519 public key
	ed25519PubCodec = 0xed
)

var (
	ErrInvalidSeed      = errors.New("did: seed must be 32 bytes")
	ErrInvalidDID       = errors.New("did: malformed did:key")
	ErrInvalidSignature = errors.New("did: signature does not verify")
)

// Provider signs on behalf of one DID. It is safe for concurrent use.
type Provider struct {
	id   string
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewProvider derives the signing key from seed with HKDF-SHA256.
// The same seed always yields the same DID.
func NewProvider(seed []byte) (*Provider, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}

	keySeed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, seed, nil, []byte(hkdfInfo)), keySeed); err != nil {
		return nil, fmt.Errorf("did: derive key: %w", err)
	}

	priv := ed25519.NewKeyFromSeed(keySeed)
	pub := priv.Public().(ed25519.PublicKey)

	return &Provider{id: Encode(pub), priv: priv, pub: pub}, nil
}

// DID returns the did:key identifier.
func (p *Provider) DID() string { return p.id }

// PublicKey returns the ed25519 public key behind the DID.
func (p *Provider) PublicKey() ed25519.PublicKey { return p.pub }

// Sign signs msg with the DID's private key.
func (p *Provider) Sign(msg []byte) []byte {
	return ed25519.Sign(p.priv, msg)
}

// Encode formats pub as a did:key (base58btc multibase, ed25519-pub multicodec).
func Encode(pub ed25519.PublicKey) string {
	prefix := varint.ToUvarint(ed25519PubCodec)
	buf := make([]byte, 0, len(prefix)+len(pub))
	buf = append(buf, prefix...)
	buf = append(buf, pub...)
	return keyPrefix + base58.Encode(buf)
}

// PublicKeyFromDID parses a did:key back into its ed25519 public key.
func PublicKeyFromDID(id string) (ed25519.PublicKey, error) {
	if !strings.HasPrefix(id, keyPrefix) {
		return nil, ErrInvalidDID
	}
	raw, err := base58.Decode(strings.TrimPrefix(id, keyPrefix))
	if err != nil {
		return nil, ErrInvalidDID
	}
	code, n, err := varint.FromUvarint(raw)
	if err != nil || code != ed25519PubCodec {
		return nil, ErrInvalidDID
	}
	if len(raw)-n != ed25519.PublicKeySize {
		return nil, ErrInvalidDID
	}
	return ed25519.PublicKey(raw[n:]), nil
}

// Verify checks that sig is a signature of msg by the key named in id.
func Verify(id string, msg, sig []byte) error {
	pub, err := PublicKeyFromDID(id)
	if err != nil {
		return err
	}
	if !ed25519.Verify(pub, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}
