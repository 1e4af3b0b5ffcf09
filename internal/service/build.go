package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gear-garage-backend/internal/assembly"
	"gear-garage-backend/internal/config"
	"gear-garage-backend/internal/database/models"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildService provides build lifecycle business logic. Builds are addressed
// solely by their access token; the record id stays internal.
type BuildService struct {
	builds    repository.BuildRepositoryInterface
	items     repository.CatalogItemRepositoryInterface
	validator *validator.Validate
	ttl       time.Duration
	shareBase string
}

// Ensure BuildService implements BuildServiceInterface
var _ BuildServiceInterface = (*BuildService)(nil)

// NewBuildService creates a new BuildService
func NewBuildService(builds repository.BuildRepositoryInterface, items repository.CatalogItemRepositoryInterface, validator *validator.Validate, cfg *config.Config) *BuildService {
	return &BuildService{
		builds:    builds,
		items:     items,
		validator: validator,
		ttl:       cfg.TempBuildTTL(),
		shareBase: strings.TrimRight(cfg.ShareBaseURL, "/"),
	}
}

// BuildPartRequest selects one catalog item for one gear category
type BuildPartRequest struct {
	GearCategory  string `json:"gear_category" validate:"required"`
	CatalogItemID string `json:"catalog_item_id" validate:"required,uuid"`
}

// CreateBuildRequest represents the request to create a temporary build
type CreateBuildRequest struct {
	Title       string             `json:"title" validate:"required,min=1,max=120"`
	Description string             `json:"description" validate:"max=2000"`
	Parts       []BuildPartRequest `json:"parts" validate:"dive"`
}

// UpdateBuildRequest represents a partial update to a temporary build.
// A nil Parts leaves the selection untouched; a non-nil Parts replaces it
// wholesale, empty slice included.
type UpdateBuildRequest struct {
	Title       *string            `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=2000"`
	Parts       []BuildPartRequest `json:"parts,omitempty" validate:"omitempty,dive"`
}

// ValidateBuildRequest carries the parts list an editing session wants checked
type ValidateBuildRequest struct {
	Parts []BuildPartRequest `json:"parts" validate:"dive"`
}

// BuildPartResponse represents one selected part in API responses
type BuildPartResponse struct {
	GearCategory  models.GearCategory `json:"gear_category"`
	CatalogItemID string              `json:"catalog_item_id"`
	Snapshot      models.PartSnapshot `json:"snapshot"`
}

// BuildResponse represents a build in API responses. The access token is
// never echoed here; only creation and promotion hand out tokens.
type BuildResponse struct {
	Status      models.BuildStatus  `json:"status"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Parts       []BuildPartResponse `json:"parts"`
	Verified    bool                `json:"verified"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateBuildResponse carries the private token for a freshly created build
type CreateBuildResponse struct {
	Token string        `json:"token"`
	Build BuildResponse `json:"build"`
}

// PromoteBuildResponse carries the durable token and shareable URL
type PromoteBuildResponse struct {
	Token string        `json:"token"`
	URL   string        `json:"url"`
	Build BuildResponse `json:"build"`
}

// ValidateBuildResponse reports the completeness check for a parts list
type ValidateBuildResponse struct {
	Valid    bool               `json:"valid"`
	Failures []assembly.Failure `json:"failures"`
}

// CreateTemp creates a temporary build with a fresh private token. The build
// expires after the configured TTL unless promoted first.
func (s *BuildService) CreateTemp(req *CreateBuildRequest) (*CreateBuildResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	parts, err := s.resolveParts(req.Parts)
	if err != nil {
		return nil, err
	}

	token, err := newAccessToken()
	if err != nil {
		return nil, err
	}

	expires := time.Now().Add(s.ttl)
	build := &models.Build{
		AccessToken: token,
		Status:      models.BuildStatusTemp,
		Title:       req.Title,
		Description: req.Description,
		Parts:       parts,
		Verified:    len(assembly.Evaluate(assembly.FromParts(parts))) == 0,
		ExpiresAt:   &expires,
	}

	if err := s.builds.Create(build); err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}

	return &CreateBuildResponse{
		Token: token,
		Build: s.toResponse(build),
	}, nil
}

// GetByToken retrieves a build by its access token. Expired temporary builds
// and consumed tokens behave exactly like tokens that never existed.
func (s *BuildService) GetByToken(token string) (*BuildResponse, error) {
	build, err := s.getLive(token)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(build)
	return &resp, nil
}

// Update applies a patch to a temporary build. Shared builds are frozen:
// updating one reports the invalid state rather than not-found, since the
// caller clearly holds a live token.
func (s *BuildService) Update(token string, req *UpdateBuildRequest) (*BuildResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	build, err := s.getLive(token)
	if err != nil {
		return nil, err
	}
	if build.Status != models.BuildStatusTemp {
		return nil, apperrors.ErrBuildAlreadyShared
	}

	if req.Title != nil {
		build.Title = *req.Title
	}
	if req.Description != nil {
		build.Description = *req.Description
	}
	if req.Parts != nil {
		parts, err := s.resolveParts(req.Parts)
		if err != nil {
			return nil, err
		}
		build.Parts = parts
		build.Verified = len(assembly.Evaluate(assembly.FromParts(parts))) == 0
	}

	if err := s.builds.Update(build); err != nil {
		return nil, fmt.Errorf("failed to update build: %w", err)
	}

	resp := s.toResponse(build)
	return &resp, nil
}

// Promote converts a temporary build into a durable shared one. The temp
// record is deleted and a new record inserted under a fresh token in a single
// transaction, so the old token stops resolving the moment the new one works.
// Promotion is one-way and single-use.
func (s *BuildService) Promote(token string) (*PromoteBuildResponse, error) {
	build, err := s.getLive(token)
	if err != nil {
		return nil, err
	}
	if build.Status != models.BuildStatusTemp {
		return nil, apperrors.ErrBuildAlreadyShared
	}

	newToken, err := newAccessToken()
	if err != nil {
		return nil, err
	}

	shared := &models.Build{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		AccessToken: newToken,
		Status:      models.BuildStatusShared,
		Title:       build.Title,
		Description: build.Description,
		Parts:       build.Parts,
		Verified:    len(assembly.Evaluate(assembly.FromParts(build.Parts))) == 0,
		ExpiresAt:   nil,
	}

	if err := s.builds.Promote(build.ID, shared); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost the race: someone promoted this token first.
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to promote build: %w", err)
	}

	return &PromoteBuildResponse{
		Token: newToken,
		URL:   fmt.Sprintf("%s/builds/%s", s.shareBase, newToken),
		Build: s.toResponse(shared),
	}, nil
}

// Validate runs the completeness rules over a submitted parts list without
// touching any stored build. Selections are taken at face value; catalog
// lookups are not performed here.
func (s *BuildService) Validate(req *ValidateBuildRequest) (*ValidateBuildResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	a := assembly.New()
	for _, part := range req.Parts {
		category := models.GearCategory(part.GearCategory)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("gear_category", fmt.Sprintf("unknown gear category %q", part.GearCategory))
		}
		a.SetPart(models.BuildPart{
			GearCategory:  category,
			CatalogItemID: part.CatalogItemID,
		})
	}

	failures := assembly.Evaluate(a)
	return &ValidateBuildResponse{
		Valid:    len(failures) == 0,
		Failures: failures,
	}, nil
}

// getLive resolves a token to a build, hiding records whose expiry has
// passed. Expiry is checked at read time; there is no background sweeper.
func (s *BuildService) getLive(token string) (*models.Build, error) {
	build, err := s.builds.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	if build.IsExpired(time.Now()) {
		return nil, apperrors.ErrBuildNotFound
	}
	return build, nil
}

// resolveParts turns submitted selections into denormalized build parts.
// Each referenced catalog item is snapshotted now; later catalog edits do not
// reach into existing builds.
func (s *BuildService) resolveParts(reqs []BuildPartRequest) (models.PartList, error) {
	parts := models.PartList{}
	for _, req := range reqs {
		itemID, err := uuid.Parse(req.CatalogItemID)
		if err != nil {
			return nil, apperrors.NewValidationError("catalog_item_id", fmt.Sprintf("invalid catalog item id %q", req.CatalogItemID))
		}

		item, err := s.items.GetByID(itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("catalog_item_id", fmt.Sprintf("catalog item %s not found", itemID))
			}
			return nil, fmt.Errorf("failed to resolve part: %w", err)
		}

		category := models.GearCategory(req.GearCategory)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("gear_category", fmt.Sprintf("unknown gear category %q", req.GearCategory))
		}
		if category != item.GearCategory {
			return nil, apperrors.NewValidationError("gear_category", fmt.Sprintf("catalog item %s is a %s, not a %s", itemID, item.GearCategory, category))
		}

		parts[category] = models.BuildPart{
			GearCategory:  category,
			CatalogItemID: item.ID.String(),
			Snapshot:      item.Snapshot(),
		}
	}
	return parts, nil
}

// toResponse converts a Build model to API response, with parts in canonical
// category order
func (s *BuildService) toResponse(build *models.Build) BuildResponse {
	parts := make([]BuildPartResponse, 0, len(build.Parts))
	for _, category := range models.AllGearCategories {
		if part, ok := build.Parts[category]; ok {
			parts = append(parts, BuildPartResponse{
				GearCategory:  part.GearCategory,
				CatalogItemID: part.CatalogItemID,
				Snapshot:      part.Snapshot,
			})
		}
	}

	return BuildResponse{
		Status:      build.Status,
		Title:       build.Title,
		Description: build.Description,
		Parts:       parts,
		Verified:    build.Verified,
		ExpiresAt:   build.ExpiresAt,
		CreatedAt:   build.CreatedAt,
		UpdatedAt:   build.UpdatedAt,
	}
}
