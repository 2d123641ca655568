// Package backend selects a storage.CAS implementation by name.
package backend

import (
	"context"
	"fmt"

	"github.com/furball-art/furball/internal/storage"
	"github.com/furball-art/furball/internal/storage/localfs"
	"github.com/furball-art/furball/internal/storage/s3cas"
)

const (
	Memory  = "memory"
	LocalFS = "localfs"
	S3      = "s3"
)

type Options struct {
	Backend  string
	LocalDir string
	S3       s3cas.Options
}

func Open(ctx context.Context, opts Options) (storage.CAS, error) {
	switch opts.Backend {
	case Memory:
		return storage.NewMemoryCAS(), nil
	case LocalFS, "":
		return localfs.New(opts.LocalDir)
	case S3:
		return s3cas.New(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unknown cas backend %q", opts.Backend)
	}
}
