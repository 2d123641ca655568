package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/furball-art/furball/internal/cidutil"
	"github.com/furball-art/furball/internal/codec"
	"github.com/furball-art/furball/internal/logging"
	"github.com/furball-art/furball/internal/models"
	"github.com/furball-art/furball/internal/storage"
)

// maxUpdateAttempts bounds retries when a concurrent update from the same
// controller bumps the version between read and write.
const maxUpdateAttempts = 3

// Service creates, loads and updates documents.
//
// Contract:
//   - Create stores content and returns an id derived from a fresh genesis
//     record, so equal content yields distinct documents.
//   - Load returns the record and its current content.
//   - Update replaces content; only the controller may do so.
type Service interface {
	Create(ctx context.Context, controller string, content []byte) (*models.Document, error)
	Load(ctx context.Context, id models.DocID) (*models.Document, []byte, error)
	Update(ctx context.Context, controller string, id models.DocID, content []byte) (*models.Document, error)
}

type service struct {
	repo   Repository
	cas    storage.CAS
	logger logging.Logger
	unique func() string
}

func NewService(repo Repository, cas storage.CAS, l logging.Logger) Service {
	return &service{
		repo:   repo,
		cas:    cas,
		logger: l.With("module", "documents"),
		unique: uuid.NewString,
	}
}

func (s *service) putContent(ctx context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyContent
	}
	c, err := s.cas.Put(ctx, content)
	if err != nil {
		return "", fmt.Errorf("store content: %w", err)
	}
	return c.String(), nil
}

// GenesisID derives the document id for g: the CIDv1 dag-cbor of its
// canonical CBOR encoding.
func GenesisID(g models.Genesis) (models.DocID, error) {
	raw, err := codec.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("encode genesis: %w", err)
	}
	c, err := cidutil.CIDv1DagCBOR(raw)
	if err != nil {
		return "", err
	}
	return models.DocID(c.String()), nil
}

func (s *service) Create(ctx context.Context, controller string, content []byte) (*models.Document, error) {
	contentCID, err := s.putContent(ctx, content)
	if err != nil {
		return nil, err
	}

	id, err := GenesisID(models.Genesis{Controller: controller, Content: contentCID, Unique: s.unique()})
	if err != nil {
		return nil, err
	}

	doc := &models.Document{ID: id, Controller: controller, Version: 1, ContentCID: contentCID}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "document created", "id", id, "controller", controller)
	return doc, nil
}

func (s *service) Load(ctx context.Context, id models.DocID) (*models.Document, []byte, error) {
	if err := id.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	c, err := cidutil.Parse(doc.ContentCID)
	if err != nil {
		return nil, nil, fmt.Errorf("document %s content cid: %w", id, err)
	}
	content, err := s.cas.Get(ctx, c)
	if err != nil {
		return nil, nil, fmt.Errorf("load content %s: %w", c, err)
	}
	return doc, content, nil
}

func (s *service) Update(ctx context.Context, controller string, id models.DocID, content []byte) (*models.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	contentCID, err := s.putContent(ctx, content)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		cur, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if cur.Controller != controller {
			return nil, ErrNotController
		}

		doc, err := s.repo.UpdateContent(ctx, id, controller, cur.Version, contentCID)
		if errors.Is(err, ErrVersionConflict) && attempt < maxUpdateAttempts {
			s.logger.Debug(ctx, "document update raced, retrying", "id", id, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Debug(ctx, "document updated", "id", id, "version", doc.Version)
		return doc, nil
	}
}
