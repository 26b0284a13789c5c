package schedule

import "branchly/models"

// ValidateDay validates a single day's slot list against the default
// per-day limit and minimum duration. See ValidateDayWithPolicy.
func ValidateDay(slots []models.Slot) models.DayVerdict {
	return ValidateDayWithPolicy(slots, DefaultMaxSlotsPerDay, DefaultMinSlotMinutes)
}

// ValidateDayWithLimit validates with an explicit per-day limit and the
// default minimum duration.
func ValidateDayWithLimit(slots []models.Slot, maxSlots int) models.DayVerdict {
	return ValidateDayWithPolicy(slots, maxSlots, DefaultMinSlotMinutes)
}

// ValidateDayWithPolicy composes the boundary, overlap and limit policies
// over one day's slots and aggregates every error key it finds, so a single
// day can report independent problems on different slots. Non-positive
// maxSlots and minMinutes fall back to the engine defaults.
//
// If the list already exceeds maxSlots the verdict is exactly [errors.max]:
// a list past the count limit is not worth validating slot by slot.
//
// Per slot, the checks run format -> overnight -> ordering (all via the
// boundary policy), then strict overlap against later slots only. The i<j
// scan is asymmetric but complete: overlap is symmetric, so every offending
// pair is reported exactly once, attributed to its earlier slot.
// A slot that fails to parse contributes only errors.format; the overlap
// predicate already ignores it.
func ValidateDayWithPolicy(slots []models.Slot, maxSlots, minMinutes int) models.DayVerdict {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlotsPerDay
	}
	if minMinutes <= 0 {
		minMinutes = DefaultMinSlotMinutes
	}
	if len(slots) > maxSlots {
		return models.DayVerdict{OK: false, Errors: []string{KeyMax}}
	}

	var errs []string
	for i, slot := range slots {
		if v := ValidateBoundariesMin(slot, minMinutes); !v.OK {
			errs = append(errs, v.Error)
			if v.Error == KeyFormat {
				continue
			}
		}
		for j := i + 1; j < len(slots); j++ {
			if IsStrictOverlap(slot, slots[j]) {
				errs = append(errs, KeyOverlap)
				break
			}
		}
	}

	return models.DayVerdict{OK: len(errs) == 0, Errors: errs}
}
