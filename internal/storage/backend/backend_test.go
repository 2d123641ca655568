package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furball-art/furball/internal/storage"
	"github.com/furball-art/furball/internal/storage/localfs"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{Backend: Memory})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryCAS{}, c)

	c, err = Open(ctx, Options{Backend: LocalFS, LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &localfs.CAS{}, c)

	_, err = Open(ctx, Options{Backend: LocalFS})
	require.Error(t, err)

	_, err = Open(ctx, Options{Backend: S3})
	require.Error(t, err, "bucket is required")

	_, err = Open(ctx, Options{Backend: "tape"})
	require.Error(t, err)
}
