package server

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furball-art/furball/internal/server/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.LocalCASDir = filepath.Join(t.TempDir(), "cas")
	return &cfg
}

func TestNewApp_InMemoryRunsAndStops(t *testing.T) {
	var logs bytes.Buffer
	app, err := newApp(context.Background(), testConfig(t), &logs)
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.db)
	assert.Contains(t, logs.String(), "documents are kept in memory")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
	assert.Contains(t, logs.String(), "Starting gRPC server")
	assert.Contains(t, logs.String(), "App stopped")
}

func TestNewApp_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "chatty"
	_, err := newApp(context.Background(), cfg, &bytes.Buffer{})
	require.Error(t, err)

	cfg = testConfig(t)
	cfg.CASBackend = "tape"
	_, err = newApp(context.Background(), cfg, &bytes.Buffer{})
	require.ErrorContains(t, err, "cas init error")
}
