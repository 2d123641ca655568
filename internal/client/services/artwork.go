package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/codec"
	"github.com/furball-art/furball/internal/models"
)

// ErrNoStegod is returned when artwork metadata carries no payload reference.
var ErrNoStegod = errors.New("artwork has no stegod payload")

// ArtworkService writes and reads artwork metadata documents.
//
// Metadata documents are write-once: every create publishes a new document,
// even for equal content.
type ArtworkService interface {
	CreateArtMetadata(ctx context.Context, m models.ArtMetadata) (models.DocID, error)
	GetArtMetadata(ctx context.Context, id models.DocID) (*models.ArtMetadata, error)
	ResolveStegodPayload(ctx context.Context, metadataID models.DocID) ([]byte, error)
}

type artworkService struct {
	store client.Store
	blobs BlobService
}

func NewArtworkService(store client.Store, blobs BlobService) ArtworkService {
	return &artworkService{store: store, blobs: blobs}
}

func (s *artworkService) CreateArtMetadata(ctx context.Context, m models.ArtMetadata) (models.DocID, error) {
	content, err := codec.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode art metadata: %w", err)
	}
	id, err := s.store.CreateDocument(ctx, content)
	if err != nil {
		return "", fmt.Errorf("create art metadata: %w", err)
	}
	return id, nil
}

func (s *artworkService) GetArtMetadata(ctx context.Context, id models.DocID) (*models.ArtMetadata, error) {
	content, err := s.store.LoadDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load art metadata %s: %w", id, err)
	}
	var m models.ArtMetadata
	if err := codec.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("decode art metadata %s: %w", id, err)
	}
	return &m, nil
}

func (s *artworkService) ResolveStegodPayload(ctx context.Context, metadataID models.DocID) ([]byte, error) {
	m, err := s.GetArtMetadata(ctx, metadataID)
	if err != nil {
		return nil, err
	}
	if m.Stegod.IsZero() {
		return nil, fmt.Errorf("%s: %w", metadataID, ErrNoStegod)
	}
	return s.blobs.GetBlob(ctx, m.Stegod)
}
