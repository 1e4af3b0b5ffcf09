// Package assembly holds the in-memory parts list of the build being edited
// and the completeness rules evaluated over it. It has no persistence and no
// locking: one editing session owns one Assembly.
package assembly

import (
	"gear-garage-backend/internal/database/models"
)

// Assembly is the current set of selected parts for a build, keyed by gear
// category. At most one part per category; re-selection replaces, never
// merges.
type Assembly struct {
	parts models.PartList
}

// New creates an empty Assembly.
func New() *Assembly {
	return &Assembly{parts: models.PartList{}}
}

// FromParts constructs an Assembly from a build's persisted parts. The input
// is copied so later mutation does not write through to the source.
func FromParts(parts models.PartList) *Assembly {
	a := New()
	for category, part := range parts {
		a.parts[category] = part
	}
	return a
}

// Set replaces any existing part for the item's category with a fresh
// snapshot of the catalog item.
func (a *Assembly) Set(category models.GearCategory, item *models.CatalogItem) {
	a.parts[category] = models.BuildPart{
		GearCategory:  category,
		CatalogItemID: item.ID.String(),
		Snapshot:      item.Snapshot(),
	}
}

// SetPart replaces any existing part for the part's category. Used when
// restoring already-snapshotted parts rather than selecting from the catalog.
func (a *Assembly) SetPart(part models.BuildPart) {
	a.parts[part.GearCategory] = part
}

// Clear removes the part for the category if present; no-op otherwise.
func (a *Assembly) Clear(category models.GearCategory) {
	delete(a.parts, category)
}

// Get returns the part for the category and whether one is set.
func (a *Assembly) Get(category models.GearCategory) (models.BuildPart, bool) {
	part, ok := a.parts[category]
	return part, ok
}

// HasSelection reports whether the category has a part with a non-empty
// catalog item id.
func (a *Assembly) HasSelection(category models.GearCategory) bool {
	part, ok := a.parts[category]
	return ok && part.CatalogItemID != ""
}

// Parts returns a copy of the current selections, suitable for persisting.
func (a *Assembly) Parts() models.PartList {
	out := make(models.PartList, len(a.parts))
	for category, part := range a.parts {
		out[category] = part
	}
	return out
}

// Len returns the number of selected parts.
func (a *Assembly) Len() int {
	return len(a.parts)
}
