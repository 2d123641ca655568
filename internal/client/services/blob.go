package services

import (
	"context"
	"fmt"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/codec"
	"github.com/furball-art/furball/internal/models"
)

// BlobService stores raw byte payloads as documents. UploadArt and
// UploadArtStegod differ from UploadBlob only in intent.
type BlobService interface {
	UploadBlob(ctx context.Context, data []byte) (models.DocID, error)
	UploadArt(ctx context.Context, image []byte) (models.DocID, error)
	UploadArtStegod(ctx context.Context, payload []byte) (models.DocID, error)
	GetBlob(ctx context.Context, id models.DocID) ([]byte, error)
}

type blobService struct {
	store client.Store
}

func NewBlobService(store client.Store) BlobService {
	return &blobService{store: store}
}

func (s *blobService) UploadBlob(ctx context.Context, data []byte) (models.DocID, error) {
	content, err := codec.Marshal(models.Blob{Data: data})
	if err != nil {
		return "", fmt.Errorf("encode blob: %w", err)
	}
	id, err := s.store.CreateDocument(ctx, content)
	if err != nil {
		return "", fmt.Errorf("upload blob: %w", err)
	}
	return id, nil
}

func (s *blobService) UploadArt(ctx context.Context, image []byte) (models.DocID, error) {
	return s.UploadBlob(ctx, image)
}

func (s *blobService) UploadArtStegod(ctx context.Context, payload []byte) (models.DocID, error) {
	return s.UploadBlob(ctx, payload)
}

func (s *blobService) GetBlob(ctx context.Context, id models.DocID) ([]byte, error) {
	content, err := s.store.LoadDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load blob %s: %w", id, err)
	}
	var b models.Blob
	if err := codec.Unmarshal(content, &b); err != nil {
		return nil, fmt.Errorf("decode blob %s: %w", id, err)
	}
	if b.Data == nil {
		b.Data = []byte{}
	}
	return b.Data, nil
}
