// Package documents keeps the node's document records and their content.
// Records live in a Repository, content bytes in a storage.CAS.
package documents

import (
	"context"

	"github.com/furball-art/furball/internal/models"
)

// Repository persists document records.
//
// Contract:
//   - Insert fails with ErrDuplicate when the id exists.
//   - Get returns ErrNotFound for unknown ids.
//   - UpdateContent replaces the content CID and bumps the version by one,
//     but only when controller matches (ErrNotController) and the stored
//     version equals expectedVersion (ErrVersionConflict).
type Repository interface {
	Insert(ctx context.Context, doc *models.Document) error
	Get(ctx context.Context, id models.DocID) (*models.Document, error)
	UpdateContent(ctx context.Context, id models.DocID, controller string, expectedVersion int64, contentCID string) (*models.Document, error)
}
