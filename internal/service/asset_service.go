package service

import (
	"context"
	"log"

	"alcyxob/fitlife/internal/config"
	"alcyxob/fitlife/internal/storage"
)

// Page names with a background image.
const (
	PageHome  = "home"
	PageAbout = "about"
)

// AssetService hands out page background image URLs.
type AssetService interface {
	BackgroundURL(ctx context.Context, page string) string
}

type assetService struct {
	storage storage.AssetStorage // nil when no bucket is configured
	cfg     config.AssetsConfig
}

// NewAssetService creates an AssetService. fileStorage may be nil, in which
// case the configured public URLs are used.
func NewAssetService(fileStorage storage.AssetStorage, cfg config.AssetsConfig) AssetService {
	return &assetService{storage: fileStorage, cfg: cfg}
}

// BackgroundURL presigns the page's object key, falling back to the public
// URL when storage is unavailable. Unknown pages get the home background.
func (s *assetService) BackgroundURL(ctx context.Context, page string) string {
	key, fallback := s.cfg.HomeBackgroundKey, s.cfg.HomeBackgroundURL
	if page == PageAbout {
		key, fallback = s.cfg.AboutBackgroundKey, s.cfg.AboutBackgroundURL
	}

	if s.storage == nil || key == "" {
		return fallback
	}

	expiry := s.cfg.URLExpiry
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, expiry)
	if err != nil {
		log.Printf("WARN: using public %s background, presign failed: %v", page, err)
		return fallback
	}
	return url
}
