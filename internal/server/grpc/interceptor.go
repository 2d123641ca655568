package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/furball-art/furball/internal/docnet"
	"github.com/furball-art/furball/internal/server/auth"
)

type ctxKey string

const didKey ctxKey = "did"

func didFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(didKey).(string)
	return id, ok && id != ""
}

// tokenRequired lists the methods that act on behalf of a controller.
var tokenRequired = map[string]bool{
	docnet.CreateDocumentMethod: true,
	docnet.UpdateDocumentMethod: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !tokenRequired[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(docnet.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	subject, err := auth.SubjectFromToken(accessToken, s.jwtSecret, s.now())
	if errors.Is(err, docnet.ErrTokenExpired) {
		return nil, status.Error(codes.Unauthenticated, docnet.ErrTokenExpired.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, didKey, subject), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
