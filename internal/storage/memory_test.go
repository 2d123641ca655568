package storage_test

import (
	"testing"

	"github.com/furball-art/furball/internal/storage"
	"github.com/furball-art/furball/internal/storage/testkit"
)

func TestMemoryCAS_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		return storage.NewMemoryCAS()
	})
}
