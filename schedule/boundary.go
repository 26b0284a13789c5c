package schedule

import "branchly/models"

// ValidateBoundaries checks a single slot's times with the default minimum
// duration. See ValidateBoundariesMin for the check order.
func ValidateBoundaries(slot models.Slot) Verdict {
	return ValidateBoundariesMin(slot, DefaultMinSlotMinutes)
}

// ValidateBoundariesMin classifies one (start, end) pair. Checks run in a
// fixed order and the first failure wins:
//
//  1. both times must parse as strict "HH:mm"    -> errors.format
//  2. end <= start is an overnight range          -> errors.overnightNotSupported
//  3. duration below minMinutes                   -> errors.order
//
// Windows spanning midnight are not supported; a 22:00-02:00 window must be
// supplied as two same-day slots. The day extremes 00:00 and 23:59 are valid.
// Duration violations reuse the ordering key because the frontend catalog
// has no duration-specific entry.
func ValidateBoundariesMin(slot models.Slot, minMinutes int) Verdict {
	start, ok := ParseTime(slot.Start)
	if !ok {
		return fail(KeyFormat)
	}
	end, ok := ParseTime(slot.End)
	if !ok {
		return fail(KeyFormat)
	}
	if end <= start {
		return fail(KeyOvernight)
	}
	if end-start < minMinutes {
		return fail(KeyOrder)
	}
	return pass()
}
