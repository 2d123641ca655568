// Package identity is the local identity cache: the persisted Identity Seed
// and the cached profile document reference.
package identity

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/furball-art/furball/internal/client/repositories/metadata"
	"github.com/furball-art/furball/internal/did"
	"github.com/furball-art/furball/internal/models"
)

const (
	SeedKey      = "identity_seed"
	ProfileIDKey = "profile_id"
)

var ErrCorruptSeed = errors.New("stored identity seed is corrupt")

var randRead = rand.Read

type Cache struct {
	repo metadata.Repository
}

func NewCache(repo metadata.Repository) *Cache {
	return &Cache{repo: repo}
}

// GetSeedOrNew returns the persisted seed, creating and persisting a new one
// on first use. An existing seed is never replaced.
func (c *Cache) GetSeedOrNew(ctx context.Context) ([]byte, error) {
	seed, err := c.repo.Get(ctx, SeedKey)
	if err != nil {
		return nil, fmt.Errorf("read identity seed: %w", err)
	}
	if seed != nil {
		if len(seed) != did.SeedSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrCorruptSeed, len(seed))
		}
		return seed, nil
	}

	seed = make([]byte, did.SeedSize)
	if _, err := randRead(seed); err != nil {
		return nil, fmt.Errorf("generate identity seed: %w", err)
	}
	if err := c.repo.Set(ctx, SeedKey, seed); err != nil {
		return nil, fmt.Errorf("persist identity seed: %w", err)
	}
	return seed, nil
}

// Provider derives the DID provider from the seed, creating the seed if needed.
func (c *Cache) Provider(ctx context.Context) (*did.Provider, error) {
	seed, err := c.GetSeedOrNew(ctx)
	if err != nil {
		return nil, err
	}
	return did.NewProvider(seed)
}

// ProfileID reports the cached profile document id; ok is false when no
// profile has been published from this device.
func (c *Cache) ProfileID(ctx context.Context) (id models.DocID, ok bool, err error) {
	v, err := c.repo.Get(ctx, ProfileIDKey)
	if err != nil {
		return "", false, fmt.Errorf("read profile id: %w", err)
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return models.DocID(v), true, nil
}

func (c *Cache) SetProfileID(ctx context.Context, id models.DocID) error {
	if id.IsZero() {
		return fmt.Errorf("set profile id: %w", models.ErrInvalidDocID)
	}
	if err := c.repo.Set(ctx, ProfileIDKey, []byte(id)); err != nil {
		return fmt.Errorf("write profile id: %w", err)
	}
	return nil
}

func (c *Cache) ClearProfileID(ctx context.Context) error {
	if err := c.repo.Delete(ctx, ProfileIDKey); err != nil {
		return fmt.Errorf("clear profile id: %w", err)
	}
	return nil
}
