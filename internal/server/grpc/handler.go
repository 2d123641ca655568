package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/furball-art/furball/internal/docnet"
	"github.com/furball-art/furball/internal/models"
	"github.com/furball-art/furball/internal/server/auth"
	"github.com/furball-art/furball/internal/server/documents"
)

func (s *GRPCServer) Authenticate(ctx context.Context, req *docnet.AuthenticateRequest) (*docnet.AuthenticateResponse, error) {
	now := s.now()

	if err := auth.VerifyChallenge(req.DID, req.IssuedAt, req.Signature, now, s.clockSkew); err != nil {
		s.logger.Warn(ctx, "authentication rejected", "did", req.DID, "error", err)
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	token, expiresAt, err := auth.GenerateToken(req.DID, s.jwtSecret, s.tokenValidity, now)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Authenticated", "did", req.DID)
	return &docnet.AuthenticateResponse{AccessToken: token, ExpiresAt: expiresAt.Unix()}, nil
}

func (s *GRPCServer) CreateDocument(ctx context.Context, req *docnet.CreateDocumentRequest) (*docnet.CreateDocumentResponse, error) {
	controller, ok := didFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	doc, err := s.docs.Create(ctx, controller, req.Content)
	if err != nil {
		return nil, s.statusError(ctx, "create", err)
	}

	return &docnet.CreateDocumentResponse{ID: doc.ID.String()}, nil
}

func (s *GRPCServer) LoadDocument(ctx context.Context, req *docnet.LoadDocumentRequest) (*docnet.LoadDocumentResponse, error) {
	doc, content, err := s.docs.Load(ctx, models.DocID(req.ID))
	if err != nil {
		return nil, s.statusError(ctx, "load", err)
	}

	return &docnet.LoadDocumentResponse{
		ID:         doc.ID.String(),
		Controller: doc.Controller,
		Version:    doc.Version,
		Content:    content,
	}, nil
}

func (s *GRPCServer) UpdateDocument(ctx context.Context, req *docnet.UpdateDocumentRequest) (*docnet.UpdateDocumentResponse, error) {
	controller, ok := didFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	doc, err := s.docs.Update(ctx, controller, models.DocID(req.ID), req.Content)
	if err != nil {
		return nil, s.statusError(ctx, "update", err)
	}

	return &docnet.UpdateDocumentResponse{Version: doc.Version}, nil
}

// statusError maps document errors to gRPC status codes. Unexpected errors
// are logged and hidden behind codes.Internal.
func (s *GRPCServer) statusError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, documents.ErrNotController):
		return status.Error(codes.PermissionDenied, "not the document controller")
	case errors.Is(err, documents.ErrVersionConflict):
		return status.Error(codes.Aborted, "concurrent update")
	case errors.Is(err, documents.ErrEmptyContent):
		return status.Error(codes.InvalidArgument, "empty content")
	case errors.Is(err, documents.ErrDuplicate):
		return status.Error(codes.AlreadyExists, "document exists")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "document "+op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
