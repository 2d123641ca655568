package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/client/identity"
	"github.com/furball-art/furball/internal/client/repositories/metadata"
	"github.com/furball-art/furball/internal/models"
)

// countingStore is an in-memory client.Store that records every call.
type countingStore struct {
	mu      sync.Mutex
	docs    map[models.DocID][]byte
	next    int
	creates int
	loads   int
	updates int

	createErr error
	loadErr   error
	updateErr error
}

func newCountingStore() *countingStore {
	return &countingStore{docs: map[models.DocID][]byte{}}
}

func (s *countingStore) CreateDocument(_ context.Context, content []byte) (models.DocID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.createErr != nil {
		return "", s.createErr
	}
	s.next++
	id := models.DocID(fmt.Sprintf("doc-%d", s.next))
	s.docs[id] = bytes.Clone(content)
	return id, nil
}

func (s *countingStore) LoadDocument(_ context.Context, id models.DocID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	c, ok := s.docs[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return bytes.Clone(c), nil
}

func (s *countingStore) UpdateDocument(_ context.Context, id models.DocID, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.docs[id]; !ok {
		return client.ErrNotFound
	}
	s.docs[id] = bytes.Clone(content)
	return nil
}

func (s *countingStore) counts() (creates, loads, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates, s.loads, s.updates
}

// countingCache wraps identity.Cache to count SetProfileID calls.
type countingCache struct {
	*identity.Cache
	sets int
}

func (c *countingCache) SetProfileID(ctx context.Context, id models.DocID) error {
	c.sets++
	return c.Cache.SetProfileID(ctx, id)
}

func newCache(t *testing.T) *countingCache {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "furball.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &countingCache{Cache: identity.NewCache(metadata.NewSQLiteRepository(db))}
}
