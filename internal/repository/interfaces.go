package repository

import (
	"gear-garage-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BuildRepositoryInterface defines the interface for build repository operations
type BuildRepositoryInterface interface {
	Create(build *models.Build) error
	GetByToken(token string) (*models.Build, error)
	Update(build *models.Build) error
	// Promote atomically replaces the temp record with the shared one:
	// the temp row is deleted (only while still temp) and the shared row
	// inserted in a single transaction.
	Promote(tempID uuid.UUID, shared *models.Build) error
}

// CatalogItemRepositoryInterface defines the interface for catalog item repository operations
type CatalogItemRepositoryInterface interface {
	Create(item *models.CatalogItem) error
	GetByID(id uuid.UUID) (*models.CatalogItem, error)
	Update(item *models.CatalogItem) error
	Search(category *models.GearCategory, query string, limit, offset int) ([]models.CatalogItem, int64, error)
}
