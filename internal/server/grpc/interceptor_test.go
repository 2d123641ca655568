package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/furball-art/furball/internal/docnet"
	"github.com/furball-art/furball/internal/server/auth"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestServer(secret string) *GRPCServer {
	s := NewGRPCServer(":0", nopLogger{}, newDocs(), secret)
	s.now = func() time.Time { return fixedNow }
	return s
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(docnet.AccessTokenHeaderName, token))
}

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := newTestServer("secret")

	for _, method := range []string{docnet.AuthenticateMethod, docnet.LoadDocumentMethod, "/grpc.health.v1.Health/Check"} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			_, ok := didFromContext(ctx)
			assert.False(t, ok)
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method}, h)
		require.NoError(t, err, method)
		assert.True(t, called, method)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")
	h := func(context.Context, any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: docnet.CreateDocumentMethod}, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")
	h := func(context.Context, any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}

	tok, _, err := auth.GenerateToken("did:key:a", []byte("other"), time.Hour, fixedNow)
	require.NoError(t, err)

	_, err = s.accessTokenInterceptor(withToken(tok), nil, &grpc.UnaryServerInfo{FullMethod: docnet.UpdateDocumentMethod}, h)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "invalid token", st.Message())
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	h := func(context.Context, any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}

	tok, _, err := auth.GenerateToken("did:key:a", []byte("secret"), time.Minute, fixedNow.Add(-time.Hour))
	require.NoError(t, err)

	_, err = s.accessTokenInterceptor(withToken(tok), nil, &grpc.UnaryServerInfo{FullMethod: docnet.CreateDocumentMethod}, h)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, docnet.ErrTokenExpired.Error(), st.Message())
}

func TestInterceptor_ValidTokenPutsDIDInContext(t *testing.T) {
	s := newTestServer("secret")
	tok, _, err := auth.GenerateToken("did:key:a", []byte("secret"), time.Hour, fixedNow)
	require.NoError(t, err)

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = didFromContext(ctx)
		return "ok", nil
	}

	_, err = s.accessTokenInterceptor(withToken(tok), nil, &grpc.UnaryServerInfo{FullMethod: docnet.CreateDocumentMethod}, h)
	require.NoError(t, err)
	assert.Equal(t, "did:key:a", got)
}
