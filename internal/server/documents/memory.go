package documents

import (
	"context"
	"sync"
	"time"

	"github.com/furball-art/furball/internal/models"
)

// MemoryRepository keeps documents in a map. Used when no database is set.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[models.DocID]models.Document
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: map[models.DocID]models.Document{}, now: time.Now}
}

func (r *MemoryRepository) Insert(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[doc.ID]; ok {
		return ErrDuplicate
	}
	now := r.now().UTC()
	doc.CreatedAt, doc.UpdatedAt = now, now
	r.docs[doc.ID] = *doc
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id models.DocID) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (r *MemoryRepository) UpdateContent(_ context.Context, id models.DocID, controller string, expectedVersion int64, contentCID string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	switch {
	case !ok:
		return nil, ErrNotFound
	case doc.Controller != controller:
		return nil, ErrNotController
	case doc.Version != expectedVersion:
		return nil, ErrVersionConflict
	}

	doc.ContentCID = contentCID
	doc.Version++
	doc.UpdatedAt = r.now().UTC()
	r.docs[id] = doc
	return &doc, nil
}
