package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5, cfg.Records.PageSize)
	assert.False(t, cfg.Records.StrictAnimalReferences)
	assert.Equal(t, BlobDriverLocal, cfg.Blob.Driver)
	assert.Equal(t, int64(10*1024*1024), cfg.Records.MaxUploadSize)
	assert.Empty(t, cfg.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Blob.S3.Timeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("STRICT_ANIMAL_REFERENCES", "true")
	t.Setenv("BLOB_DRIVER", "S3")
	t.Setenv("S3_BUCKET_NAME", "photos")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 20, cfg.Records.PageSize)
	assert.True(t, cfg.Records.StrictAnimalReferences)
	assert.Equal(t, BlobDriverS3, cfg.Blob.Driver)
	assert.Equal(t, "photos", cfg.Blob.S3.BucketName)
}

func TestLoad_RejectsUnknownBlobDriver(t *testing.T) {
	t.Setenv("BLOB_DRIVER", "ftp")

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOB_DRIVER")
}

func TestLoad_RejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")

	_, err := load(viper.New())
	require.Error(t, err)
}
