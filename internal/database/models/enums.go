package models

// GearCategory identifies the slot a part fills in a build. The set is
// closed: every category is either a required slot, part of the power
// stack, or optional.
type GearCategory string

const (
	GearCategoryFrame    GearCategory = "frame"
	GearCategoryMotor    GearCategory = "motor"
	GearCategoryReceiver GearCategory = "receiver"
	GearCategoryVTX      GearCategory = "vtx"
	GearCategoryAIO      GearCategory = "aio"
	GearCategoryFC       GearCategory = "fc"
	GearCategoryESC      GearCategory = "esc"
	GearCategoryCamera   GearCategory = "camera"
	GearCategoryProp     GearCategory = "prop"
	GearCategoryAntenna  GearCategory = "antenna"
	GearCategoryOther    GearCategory = "other"
)

// SlotKind classifies a gear category for completeness checking.
type SlotKind int

const (
	SlotRequired SlotKind = iota
	SlotPower
	SlotOptional
)

// AllGearCategories lists every category in canonical order. Required slots
// first, then the power stack, then optional slots.
var AllGearCategories = []GearCategory{
	GearCategoryFrame,
	GearCategoryMotor,
	GearCategoryReceiver,
	GearCategoryVTX,
	GearCategoryAIO,
	GearCategoryFC,
	GearCategoryESC,
	GearCategoryCamera,
	GearCategoryProp,
	GearCategoryAntenna,
	GearCategoryOther,
}

// IsValid checks if the GearCategory is one of the closed set.
func (g GearCategory) IsValid() bool {
	switch g {
	case GearCategoryFrame, GearCategoryMotor, GearCategoryReceiver, GearCategoryVTX,
		GearCategoryAIO, GearCategoryFC, GearCategoryESC,
		GearCategoryCamera, GearCategoryProp, GearCategoryAntenna, GearCategoryOther:
		return true
	}
	return false
}

// Slot returns the SlotKind for the category. The switch is exhaustive over
// the closed set; an unknown category is treated as optional so it can never
// block a build.
func (g GearCategory) Slot() SlotKind {
	switch g {
	case GearCategoryFrame, GearCategoryMotor, GearCategoryReceiver, GearCategoryVTX:
		return SlotRequired
	case GearCategoryAIO, GearCategoryFC, GearCategoryESC:
		return SlotPower
	case GearCategoryCamera, GearCategoryProp, GearCategoryAntenna, GearCategoryOther:
		return SlotOptional
	}
	return SlotOptional
}

// BuildStatus represents the visibility/durability state of a build
type BuildStatus string

const (
	BuildStatusTemp   BuildStatus = "temp"
	BuildStatusShared BuildStatus = "shared"
)

// IsValid checks if the BuildStatus is valid
func (s BuildStatus) IsValid() bool {
	switch s {
	case BuildStatusTemp, BuildStatusShared:
		return true
	}
	return false
}

// CatalogItemStatus represents the lifecycle status of a catalog entry
type CatalogItemStatus string

const (
	CatalogItemStatusActive       CatalogItemStatus = "active"
	CatalogItemStatusPending      CatalogItemStatus = "pending"
	CatalogItemStatusDiscontinued CatalogItemStatus = "discontinued"
)

// IsValid checks if the CatalogItemStatus is valid
func (s CatalogItemStatus) IsValid() bool {
	switch s {
	case CatalogItemStatusActive, CatalogItemStatusPending, CatalogItemStatusDiscontinued:
		return true
	}
	return false
}
