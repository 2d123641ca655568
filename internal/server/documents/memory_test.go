package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furball-art/furball/internal/models"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	doc := &models.Document{ID: "bafyone", Controller: "did:key:a", Version: 1, ContentCID: "c1"}
	require.NoError(t, r.Insert(ctx, doc))
	assert.False(t, doc.CreatedAt.IsZero())
	assert.ErrorIs(t, r.Insert(ctx, &models.Document{ID: "bafyone"}), ErrDuplicate)

	got, err := r.Get(ctx, "bafyone")
	require.NoError(t, err)
	assert.Equal(t, *doc, *got)

	_, err = r.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.UpdateContent(ctx, "missing", "did:key:a", 1, "c2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.UpdateContent(ctx, "bafyone", "did:key:b", 1, "c2")
	assert.ErrorIs(t, err, ErrNotController)
	_, err = r.UpdateContent(ctx, "bafyone", "did:key:a", 7, "c2")
	assert.ErrorIs(t, err, ErrVersionConflict)

	updated, err := r.UpdateContent(ctx, "bafyone", "did:key:a", 1, "c2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, "c2", updated.ContentCID)

	got, err = r.Get(ctx, "bafyone")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ContentCID)
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Insert(ctx, &models.Document{ID: "x", Controller: "c", Version: 1, ContentCID: "c1"}))

	got, err := r.Get(ctx, "x")
	require.NoError(t, err)
	got.ContentCID = "tampered"

	again, err := r.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "c1", again.ContentCID)
}
