package client

import (
	"context"

	"github.com/furball-art/furball/internal/did"
	"github.com/furball-art/furball/internal/models"
)

// Store is the document network as the services see it. Content is opaque
// CBOR at this layer.
type Store interface {
	CreateDocument(ctx context.Context, content []byte) (models.DocID, error)
	LoadDocument(ctx context.Context, id models.DocID) ([]byte, error)
	UpdateDocument(ctx context.Context, id models.DocID, content []byte) error
}

// Client is a Store bound to a node connection and a DID session.
type Client interface {
	Store
	SetDIDProvider(ctx context.Context, p *did.Provider) error
	Ping(ctx context.Context) error
	Close() error
}
