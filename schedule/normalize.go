package schedule

import (
	"sort"

	"branchly/models"
)

// Normalize returns a canonical copy of a day's slot list: cloned, sorted
// ascending by start time and stripped of structural duplicates (keeping the
// first occurrence in sorted order). The input is never mutated and the
// result shares no structure with it, so callers may edit either side
// freely. Normalize is idempotent: re-applying it to its own output yields
// a value-equal list.
//
// Slots whose times fail to parse compare equal to everything, so the stable
// sort leaves their relative position unspecified but deterministic for a
// given input.
func Normalize(slots []models.Slot) []models.Slot {
	cloned := make([]models.Slot, len(slots))
	copy(cloned, slots)

	sort.SliceStable(cloned, func(i, j int) bool {
		return CompareTimes(cloned[i].Start, cloned[j].Start) < 0
	})

	result := make([]models.Slot, 0, len(cloned))
	seen := make(map[models.Slot]struct{}, len(cloned))
	for _, slot := range cloned {
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}
		result = append(result, slot)
	}
	return result
}
