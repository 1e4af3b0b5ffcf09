package repository

import (
	"gear-garage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItemRepository handles database operations for catalog items
type CatalogItemRepository struct {
	db *gorm.DB
}

// Ensure CatalogItemRepository implements CatalogItemRepositoryInterface
var _ CatalogItemRepositoryInterface = (*CatalogItemRepository)(nil)

// NewCatalogItemRepository creates a new catalog item repository
func NewCatalogItemRepository(db *gorm.DB) *CatalogItemRepository {
	return &CatalogItemRepository{db: db}
}

// Create inserts a new catalog item
func (r *CatalogItemRepository) Create(item *models.CatalogItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a catalog item by its UUID
func (r *CatalogItemRepository) GetByID(id uuid.UUID) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update persists changes to a catalog item
func (r *CatalogItemRepository) Update(item *models.CatalogItem) error {
	return r.db.Save(item).Error
}

// Search retrieves catalog items filtered by category and free-text query
// over brand, model and variant, with pagination
func (r *CatalogItemRepository) Search(category *models.GearCategory, query string, limit, offset int) ([]models.CatalogItem, int64, error) {
	var items []models.CatalogItem
	var total int64

	searchQuery := r.db.Model(&models.CatalogItem{})
	if category != nil {
		searchQuery = searchQuery.Where("gear_category = ?", *category)
	}
	if query != "" {
		like := "%" + query + "%"
		searchQuery = searchQuery.Where("brand ILIKE ? OR model_name ILIKE ? OR variant ILIKE ?", like, like, like)
	}

	// Get total count
	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := searchQuery.Limit(limit).Offset(offset).Order("brand ASC, model_name ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
