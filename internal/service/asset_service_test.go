package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alcyxob/fitlife/internal/config"
	"alcyxob/fitlife/internal/storage"
)

type fakeStorage struct {
	err       error
	gotKey    string
	gotExpiry time.Duration
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	f.gotKey, f.gotExpiry = key, expires
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.example/" + key + "?sig=abc", nil
}

var assetsCfg = config.AssetsConfig{
	HomeBackgroundKey:  "bg/home.jpg",
	HomeBackgroundURL:  "https://public.example/home.jpg",
	AboutBackgroundKey: "bg/about.jpg",
	AboutBackgroundURL: "https://public.example/about.jpg",
}

func TestAssetService_Presigned(t *testing.T) {
	fs := &fakeStorage{}
	svc := NewAssetService(fs, assetsCfg)

	assert.Equal(t, "https://bucket.example/bg/about.jpg?sig=abc", svc.BackgroundURL(context.Background(), PageAbout))
	assert.Equal(t, "bg/about.jpg", fs.gotKey)
	assert.Equal(t, storage.DefaultPresignedURLExpiry, fs.gotExpiry)

	assert.Equal(t, "https://bucket.example/bg/home.jpg?sig=abc", svc.BackgroundURL(context.Background(), PageHome))
}

func TestAssetService_Fallbacks(t *testing.T) {
	svc := NewAssetService(nil, assetsCfg)
	assert.Equal(t, "https://public.example/home.jpg", svc.BackgroundURL(context.Background(), PageHome))

	failing := NewAssetService(&fakeStorage{err: errors.New("no credentials")}, assetsCfg)
	assert.Equal(t, "https://public.example/about.jpg", failing.BackgroundURL(context.Background(), PageAbout))
}
