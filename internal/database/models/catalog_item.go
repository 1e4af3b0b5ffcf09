package models

// CatalogItem represents one entry in the gear catalog. Builds never
// reference these rows directly; a PartSnapshot is copied into the build at
// selection time so a build's displayed contents do not change when the
// catalog entry is later edited.
type CatalogItem struct {
	BaseModel
	GearCategory GearCategory      `json:"gear_category" gorm:"type:varchar(20);not null;index" validate:"required"`
	Brand        string            `json:"brand" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	ModelName    string            `json:"model_name" gorm:"column:model_name;not null;size:150" validate:"required,min=1,max=150"`
	Variant      string            `json:"variant" gorm:"size:100" validate:"max=100"`
	Description  string            `json:"description" gorm:"type:text"`
	Status       CatalogItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`
	// ImageKey is the object-storage key of the item's image. Never a URL:
	// retrieval goes through the credentialed asset transport.
	ImageKey string `json:"image_key" gorm:"size:500"`
}

// TableName returns the table name for CatalogItem
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// HasImage reports whether the item references a stored image.
func (c *CatalogItem) HasImage() bool {
	return c.ImageKey != ""
}

// Snapshot copies the descriptive fields into an immutable PartSnapshot.
func (c *CatalogItem) Snapshot() PartSnapshot {
	return PartSnapshot{
		Brand:     c.Brand,
		ModelName: c.ModelName,
		Variant:   c.Variant,
		Status:    c.Status,
		ImageKey:  c.ImageKey,
	}
}
