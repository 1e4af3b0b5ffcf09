package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PartSnapshot is the denormalized copy of a CatalogItem embedded in a
// build's parts. Immutable once written.
type PartSnapshot struct {
	Brand     string            `json:"brand"`
	ModelName string            `json:"model_name"`
	Variant   string            `json:"variant,omitempty"`
	Status    CatalogItemStatus `json:"status"`
	ImageKey  string            `json:"image_key,omitempty"`
}

// BuildPart is one slot assignment inside a build.
type BuildPart struct {
	GearCategory  GearCategory `json:"gear_category"`
	CatalogItemID string       `json:"catalog_item_id"`
	Snapshot      PartSnapshot `json:"snapshot"`
}

// PartList maps each gear category to its selected part. The map key
// guarantees at most one part per category.
type PartList map[GearCategory]BuildPart

// Value implements driver.Valuer for jsonb storage.
func (p PartList) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal parts: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for jsonb storage.
func (p *PartList) Scan(value interface{}) error {
	if value == nil {
		*p = PartList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported parts column type %T", value)
	}
	if len(data) == 0 {
		*p = PartList{}
		return nil
	}
	return json.Unmarshal(data, p)
}

// Build represents a user-composed parts list. A build is addressed
// externally by its opaque AccessToken, never by ID: the token is the
// capability, the ID is the record key.
//
// TEMP builds carry an expiry and a private token; promotion creates a new
// SHARED record with a fresh public token and retires the TEMP record.
type Build struct {
	BaseModel
	AccessToken string      `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Status      BuildStatus `json:"status" gorm:"type:varchar(20);not null;default:'temp';index" validate:"required"`
	Title       string      `json:"title" gorm:"size:150" validate:"max=150"`
	Description string      `json:"description" gorm:"size:2000" validate:"max=2000"`
	Parts       PartList    `json:"parts" gorm:"type:jsonb"`
	Verified    bool        `json:"verified" gorm:"not null;default:false"`
	// ExpiresAt is set iff Status is temp. Expiry is enforced when the token
	// is resolved, not by background eviction.
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"index"`
}

// TableName returns the table name for Build
func (Build) TableName() string {
	return "builds"
}

// IsExpired reports whether a TEMP build's expiry has passed at the given
// instant. SHARED builds never expire.
func (b *Build) IsExpired(now time.Time) bool {
	return b.Status == BuildStatusTemp && b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}
