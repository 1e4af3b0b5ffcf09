package service

import (
	"context"
	"errors"

	"gear-garage-backend/internal/asset"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetService serves catalog item images through the credentialed asset
// cache. Callers receive a handle they must revoke when done.
type AssetService struct {
	items repository.CatalogItemRepositoryInterface
	cache *asset.Cache
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new AssetService
func NewAssetService(items repository.CatalogItemRepositoryInterface, cache *asset.Cache) *AssetService {
	return &AssetService{
		items: items,
		cache: cache,
	}
}

// GetCatalogImage fetches the image for a catalog item. Unknown items, items
// without an image, and store failures all surface as NotFound; the caller
// falls back to its placeholder either way.
func (s *AssetService) GetCatalogImage(ctx context.Context, itemID uuid.UUID) (*asset.Handle, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, err
	}

	return s.cache.Fetch(ctx, item.ImageKey, item.HasImage())
}
