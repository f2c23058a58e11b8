package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BlobStoreFailureReturnsError(t *testing.T) {
	// Un archivo regular como raíz: MkdirAll falla.
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	t.Setenv("DB_DSN", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("BLOB_DRIVER", "local")
	t.Setenv("BLOB_LOCAL_DIR", filepath.Join(file, "photos"))

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blob store")
}

func TestRun_InvalidConfigReturnsError(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAGE_SIZE")
}
