package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/codec"
	"github.com/furball-art/furball/internal/models"
)

// ProfileCache is where the profile document reference is remembered.
// identity.Cache implements it.
type ProfileCache interface {
	ProfileID(ctx context.Context) (models.DocID, bool, error)
	SetProfileID(ctx context.Context, id models.DocID) error
	ClearProfileID(ctx context.Context) error
}

// ProfileService publishes and reads the user's profile document.
//
// Contract:
//   - UpsertProfile: with no cached reference, create one document and cache
//     its id; otherwise confirm the cached document loads, then replace its
//     content in place. The returned id never changes once cached.
//   - GetProfile: nil when nothing is cached or the document is empty.
type ProfileService interface {
	UpsertProfile(ctx context.Context, p models.UserProfile) (models.DocID, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
}

type ProfileOption func(*profileService)

// WithRecreateOnStale makes UpsertProfile forget a cached reference that no
// longer resolves and publish a fresh document instead of failing.
func WithRecreateOnStale(v bool) ProfileOption {
	return func(s *profileService) { s.recreateOnStale = v }
}

type profileService struct {
	store           client.Store
	cache           ProfileCache
	recreateOnStale bool
}

func NewProfileService(store client.Store, cache ProfileCache, opts ...ProfileOption) ProfileService {
	s := &profileService{store: store, cache: cache}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *profileService) UpsertProfile(ctx context.Context, p models.UserProfile) (models.DocID, error) {
	content, err := codec.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}

	id, ok, err := s.cache.ProfileID(ctx)
	if err != nil {
		return "", err
	}

	if ok {
		_, err := s.store.LoadDocument(ctx, id)
		switch {
		case err == nil:
			if err := s.store.UpdateDocument(ctx, id, content); err != nil {
				return "", fmt.Errorf("update profile %s: %w", id, err)
			}
			return id, nil
		case s.recreateOnStale && errors.Is(err, client.ErrNotFound):
			if err := s.cache.ClearProfileID(ctx); err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("load profile %s: %w", id, err)
		}
	}

	id, err = s.store.CreateDocument(ctx, content)
	if err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	if err := s.cache.SetProfileID(ctx, id); err != nil {
		return id, err
	}
	return id, nil
}

func (s *profileService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	id, ok, err := s.cache.ProfileID(ctx)
	if err != nil || !ok {
		return nil, err
	}

	content, err := s.store.LoadDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", id, err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	var p models.UserProfile
	if err := codec.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return &p, nil
}
