package assembly

import (
	"fmt"

	"gear-garage-backend/internal/database/models"
)

// PowerStackTag tags the single cross-field power-stack failure. It is not a
// gear category: the power stack fails as a group, not per slot.
const PowerStackTag = "power-stack"

// Failure is one validation failure against the completeness rules. At most
// one failure per tag is produced.
type Failure struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Evaluate runs the completeness rules over a snapshot of the assembly and
// returns the failure set. Pure and stateless: the result is recomputed
// wholesale on every call and never retains failures from a prior snapshot.
//
// Output order is deterministic: required slots in canonical category order,
// then the power-stack failure if any.
func Evaluate(a *Assembly) []Failure {
	failures := []Failure{}

	for _, category := range models.AllGearCategories {
		switch category.Slot() {
		case models.SlotRequired:
			if !a.HasSelection(category) {
				failures = append(failures, Failure{
					Category: string(category),
					Message:  fmt.Sprintf("a %s is required", category),
				})
			}
		case models.SlotPower, models.SlotOptional:
			// Power slots are checked as a group below; optional slots
			// never fail.
		}
	}

	if !powerStackSatisfied(a) {
		failures = append(failures, Failure{
			Category: PowerStackTag,
			Message:  "power stack incomplete: select an AIO, or both a flight controller and an ESC",
		})
	}

	return failures
}

// powerStackSatisfied reports whether the power-delivery group is complete:
// an AIO alone, or the FC+ESC pair.
func powerStackSatisfied(a *Assembly) bool {
	if a.HasSelection(models.GearCategoryAIO) {
		return true
	}
	return a.HasSelection(models.GearCategoryFC) && a.HasSelection(models.GearCategoryESC)
}
