package repository

import (
	"gear-garage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildRepository handles database operations for builds
type BuildRepository struct {
	db *gorm.DB
}

// Ensure BuildRepository implements BuildRepositoryInterface
var _ BuildRepositoryInterface = (*BuildRepository)(nil)

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *gorm.DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// Create inserts a new build row
func (r *BuildRepository) Create(build *models.Build) error {
	return r.db.Create(build).Error
}

// GetByToken retrieves a build by its access token regardless of status.
// Expiry is a business rule enforced by the service, not here.
func (r *BuildRepository) GetByToken(token string) (*models.Build, error) {
	var build models.Build
	if err := r.db.First(&build, "access_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &build, nil
}

// Update persists the build's mutable fields
func (r *BuildRepository) Update(build *models.Build) error {
	return r.db.Save(build).Error
}

// Promote deletes the temp row and inserts the shared row in one
// transaction. The delete is guarded on status, so a concurrent promote or
// update of the same token is totally ordered by the transaction: whichever
// runs second sees no temp row and fails with ErrRecordNotFound.
func (r *BuildRepository) Promote(tempID uuid.UUID, shared *models.Build) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", tempID, models.BuildStatusTemp).
			Delete(&models.Build{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(shared).Error
	})
}
