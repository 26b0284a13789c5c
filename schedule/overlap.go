package schedule

import "branchly/models"

// IsStrictOverlap reports whether two slots within the same day intersect
// beyond mere edge-touching. Back-to-back windows (one's end equal to the
// other's start) are legal and never count as overlap. A slot that fails to
// parse overlaps nothing; format problems are surfaced by the boundary check.
func IsStrictOverlap(a, b models.Slot) bool {
	aStart, ok := ParseTime(a.Start)
	if !ok {
		return false
	}
	aEnd, ok := ParseTime(a.End)
	if !ok {
		return false
	}
	bStart, ok := ParseTime(b.Start)
	if !ok {
		return false
	}
	bEnd, ok := ParseTime(b.End)
	if !ok {
		return false
	}
	return aStart < bEnd && aEnd > bStart
}

// CanAddWithoutOverlap checks whether candidate can join existing without
// strictly intersecting any of them.
func CanAddWithoutOverlap(existing []models.Slot, candidate models.Slot) Verdict {
	for _, slot := range existing {
		if IsStrictOverlap(slot, candidate) {
			return fail(KeyOverlap)
		}
	}
	return pass()
}

// FindOverlapping returns every slot in slots that strictly overlaps target.
// A linear scan is enough: per-day slot counts are bounded by the limit
// policy, so there is nothing to gain from sorting first.
func FindOverlapping(slots []models.Slot, target models.Slot) []models.Slot {
	var overlapping []models.Slot
	for _, slot := range slots {
		if IsStrictOverlap(slot, target) {
			overlapping = append(overlapping, slot)
		}
	}
	return overlapping
}
