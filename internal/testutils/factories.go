package testutils

import (
	"time"

	"gear-garage-backend/internal/database/models"

	"github.com/google/uuid"
)

// CatalogItemFactory provides methods to create test CatalogItem data
type CatalogItemFactory struct{}

// NewCatalogItemFactory creates a new CatalogItemFactory
func NewCatalogItemFactory() *CatalogItemFactory {
	return &CatalogItemFactory{}
}

// Create creates a test CatalogItem with default values
func (f *CatalogItemFactory) Create() *models.CatalogItem {
	return &models.CatalogItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GearCategory: models.GearCategoryFrame,
		Brand:        "GEPRC",
		ModelName:    "Mark5",
		Variant:      "HD",
		Description:  "5 inch freestyle frame",
		Status:       models.CatalogItemStatusActive,
		ImageKey:     "catalog/geprc/mark5.png",
	}
}

// WithCategory sets a custom gear category
func (f *CatalogItemFactory) WithCategory(category models.GearCategory) *models.CatalogItem {
	item := f.Create()
	item.GearCategory = category
	return item
}

// WithBrandModel sets custom brand and model names
func (f *CatalogItemFactory) WithBrandModel(brand, modelName string) *models.CatalogItem {
	item := f.Create()
	item.Brand = brand
	item.ModelName = modelName
	return item
}

// WithoutImage clears the image key
func (f *CatalogItemFactory) WithoutImage() *models.CatalogItem {
	item := f.Create()
	item.ImageKey = ""
	return item
}

// BuildFactory provides methods to create test Build data
type BuildFactory struct{}

// NewBuildFactory creates a new BuildFactory
func NewBuildFactory() *BuildFactory {
	return &BuildFactory{}
}

// CreateTemp creates a temporary build expiring in the future
func (f *BuildFactory) CreateTemp(token string) *models.Build {
	expires := time.Now().Add(72 * time.Hour)
	return &models.Build{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AccessToken: token,
		Status:      models.BuildStatusTemp,
		Title:       "My first quad",
		Description: "Budget 5 inch freestyle build",
		Parts:       models.PartList{},
		Verified:    false,
		ExpiresAt:   &expires,
	}
}

// CreateExpiredTemp creates a temporary build whose expiry has passed
func (f *BuildFactory) CreateExpiredTemp(token string) *models.Build {
	build := f.CreateTemp(token)
	expired := time.Now().Add(-1 * time.Hour)
	build.ExpiresAt = &expired
	return build
}

// CreateShared creates a durable shared build
func (f *BuildFactory) CreateShared(token string) *models.Build {
	build := f.CreateTemp(token)
	build.Status = models.BuildStatusShared
	build.ExpiresAt = nil
	build.Verified = true
	return build
}

// WithParts sets the parts list on a build
func (f *BuildFactory) WithParts(build *models.Build, items ...*models.CatalogItem) *models.Build {
	if build.Parts == nil {
		build.Parts = models.PartList{}
	}
	for _, item := range items {
		build.Parts[item.GearCategory] = models.BuildPart{
			GearCategory:  item.GearCategory,
			CatalogItemID: item.ID.String(),
			Snapshot:      item.Snapshot(),
		}
	}
	return build
}
