package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"alcyxob/fitlife/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio.local:9000", endpointURL("minio.local:9000", true))
	assert.Equal(t, "http://minio.local:9000", endpointURL("minio.local:9000", false))
	assert.Equal(t, "http://already.set", endpointURL("http://already.set", true))
}

func TestS3Storage_PresignDownload(t *testing.T) {
	// Presigning is local computation, no bucket has to exist.
	store, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "minio.local:9000",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BucketName:      "fitlife-assets",
		UseSSL:          false,
	})
	require.NoError(t, err)

	raw, err := store.GeneratePresignedDownloadURL(context.Background(), "backgrounds/home.jpg", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "minio.local:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/fitlife-assets/backgrounds/home.jpg"), u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
