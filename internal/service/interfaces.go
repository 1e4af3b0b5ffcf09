package service

import (
	"context"

	"gear-garage-backend/internal/asset"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BuildServiceInterface defines the interface for build service
type BuildServiceInterface interface {
	CreateTemp(req *CreateBuildRequest) (*CreateBuildResponse, error)
	GetByToken(token string) (*BuildResponse, error)
	Update(token string, req *UpdateBuildRequest) (*BuildResponse, error)
	Promote(token string) (*PromoteBuildResponse, error)
	Validate(req *ValidateBuildRequest) (*ValidateBuildResponse, error)
}

// CatalogServiceInterface defines the interface for catalog service
type CatalogServiceInterface interface {
	Search(category, query string, page, pageSize int) (*CatalogItemListResponse, error)
	GetByID(id uuid.UUID) (*CatalogItemResponse, error)
	Create(req *CreateCatalogItemRequest) (*CatalogItemResponse, error)
	Update(id uuid.UUID, req *UpdateCatalogItemRequest) (*CatalogItemResponse, error)
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	GetCatalogImage(ctx context.Context, itemID uuid.UUID) (*asset.Handle, error)
}
