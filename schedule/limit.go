package schedule

import "branchly/models"

// CanAddWithinLimit checks whether one more slot fits under maxSlots. The
// limit is inclusive: a day already holding maxSlots rejects any addition.
// Pass maxSlots <= 0 to use the domain default.
func CanAddWithinLimit(existing []models.Slot, maxSlots int) Verdict {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlotsPerDay
	}
	if len(existing) >= maxSlots {
		return fail(KeyMax)
	}
	return pass()
}

// IsAtLimit reports whether the day already holds maxSlots or more slots.
func IsAtLimit(existing []models.Slot, maxSlots int) bool {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlotsPerDay
	}
	return len(existing) >= maxSlots
}

// RemainingCapacity returns how many more slots the day can take, never
// going negative even when the stored list already exceeds the limit.
func RemainingCapacity(existing []models.Slot, maxSlots int) int {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlotsPerDay
	}
	remaining := maxSlots - len(existing)
	if remaining < 0 {
		return 0
	}
	return remaining
}
