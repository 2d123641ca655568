package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/furball-art/furball/internal/logging"
	"github.com/furball-art/furball/internal/server/documents"
	"github.com/furball-art/furball/internal/storage"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newDocs() documents.Service {
	return documents.NewService(documents.NewMemoryRepository(), storage.NewMemoryCAS(), nopLogger{})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, newDocs(), "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, newDocs(), "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestNewGRPCServer_Options(t *testing.T) {
	srv := NewGRPCServer(":0", nopLogger{}, newDocs(), "k",
		WithTokenValidity(time.Minute),
		WithClockSkew(time.Second),
		WithMaxMessageBytes(1024),
	)
	if srv.tokenValidity != time.Minute || srv.clockSkew != time.Second || srv.maxMessageBytes != 1024 {
		t.Fatalf("options not applied: %+v", srv)
	}
}
