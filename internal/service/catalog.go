package service

import (
	"errors"
	"fmt"
	"time"

	"gear-garage-backend/internal/database/models"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService provides catalog-item business logic
type CatalogService struct {
	repo      repository.CatalogItemRepositoryInterface
	validator *validator.Validate
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogItemRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCatalogItemRequest represents the request to create a catalog item
type CreateCatalogItemRequest struct {
	GearCategory string `json:"gear_category" validate:"required"`
	Brand        string `json:"brand" validate:"required,min=1,max=100"`
	ModelName    string `json:"model_name" validate:"required,min=1,max=150"`
	Variant      string `json:"variant" validate:"max=100"`
	Description  string `json:"description" validate:"max=1500"`
	Status       string `json:"status" validate:"omitempty,oneof=active pending discontinued"`
	ImageKey     string `json:"image_key" validate:"max=500"`
}

// UpdateCatalogItemRequest represents a partial update to a catalog item.
// The gear category is immutable; existing builds hold snapshots keyed by it.
type UpdateCatalogItemRequest struct {
	Brand       *string `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	ModelName   *string `json:"model_name,omitempty" validate:"omitempty,min=1,max=150"`
	Variant     *string `json:"variant,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1500"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active pending discontinued"`
	ImageKey    *string `json:"image_key,omitempty" validate:"omitempty,max=500"`
}

// CatalogItemResponse represents a catalog item in API responses. The image
// object key stays server-side; clients only learn whether an image exists
// and fetch it through the asset endpoint.
type CatalogItemResponse struct {
	ID           uuid.UUID                `json:"id"`
	GearCategory models.GearCategory      `json:"gear_category"`
	Brand        string                   `json:"brand"`
	ModelName    string                   `json:"model_name"`
	Variant      string                   `json:"variant,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Status       models.CatalogItemStatus `json:"status"`
	HasImage     bool                     `json:"has_image"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// CatalogItemListResponse represents a paginated catalog search result
type CatalogItemListResponse struct {
	Items    []CatalogItemResponse `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Search retrieves catalog items filtered by gear category and free-text
// query, with pagination
func (s *CatalogService) Search(category, query string, page, pageSize int) (*CatalogItemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var categoryFilter *models.GearCategory
	if category != "" {
		parsed := models.GearCategory(category)
		if !parsed.IsValid() {
			return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown gear category %q", category))
		}
		categoryFilter = &parsed
	}

	offset := (page - 1) * pageSize
	items, total, err := s.repo.Search(categoryFilter, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog items: %w", err)
	}

	responses := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		responses[i] = s.toResponse(&item)
	}

	return &CatalogItemListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves a single catalog item
func (s *CatalogService) GetByID(id uuid.UUID) (*CatalogItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	resp := s.toResponse(item)
	return &resp, nil
}

// Create creates a new catalog item
func (s *CatalogService) Create(req *CreateCatalogItemRequest) (*CatalogItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := models.GearCategory(req.GearCategory)
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("gear_category", fmt.Sprintf("unknown gear category %q", req.GearCategory))
	}

	status := models.CatalogItemStatusActive
	if req.Status != "" {
		status = models.CatalogItemStatus(req.Status)
	}

	item := &models.CatalogItem{
		GearCategory: category,
		Brand:        req.Brand,
		ModelName:    req.ModelName,
		Variant:      req.Variant,
		Description:  req.Description,
		Status:       status,
		ImageKey:     req.ImageKey,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	resp := s.toResponse(item)
	return &resp, nil
}

// Update applies a patch to an existing catalog item. Builds holding
// snapshots of this item are unaffected.
func (s *CatalogService) Update(id uuid.UUID, req *UpdateCatalogItemRequest) (*CatalogItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	if req.Brand != nil {
		item.Brand = *req.Brand
	}
	if req.ModelName != nil {
		item.ModelName = *req.ModelName
	}
	if req.Variant != nil {
		item.Variant = *req.Variant
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Status != nil {
		item.Status = models.CatalogItemStatus(*req.Status)
	}
	if req.ImageKey != nil {
		item.ImageKey = *req.ImageKey
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update catalog item: %w", err)
	}

	resp := s.toResponse(item)
	return &resp, nil
}

// toResponse converts a CatalogItem model to API response
func (s *CatalogService) toResponse(item *models.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:           item.ID,
		GearCategory: item.GearCategory,
		Brand:        item.Brand,
		ModelName:    item.ModelName,
		Variant:      item.Variant,
		Description:  item.Description,
		Status:       item.Status,
		HasImage:     item.HasImage(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
