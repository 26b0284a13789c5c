package schedule

import "branchly/models"

// ValidateWeek validates a full reservation week with the default per-day
// limit and minimum duration. See ValidateWeekWithPolicy.
func ValidateWeek(week models.ReservationWeek) models.WeekVerdict {
	return ValidateWeekWithPolicy(week, DefaultMaxSlotsPerDay, DefaultMinSlotMinutes)
}

// ValidateWeekWithLimit validates with an explicit per-day limit and the
// default minimum duration.
func ValidateWeekWithLimit(week models.ReservationWeek, maxSlots int) models.WeekVerdict {
	return ValidateWeekWithPolicy(week, maxSlots, DefaultMinSlotMinutes)
}

// ValidateWeekWithPolicy applies the day validator independently to all
// seven weekdays in canonical order. A day with no slots (or absent from the
// map) is trivially valid. The composite OK is the AND of the per-day
// verdicts, and PerDay carries entries only for days that reported errors,
// so a clean week yields an empty PerDay, which the admin frontend iterates
// to paint day-level error state.
func ValidateWeekWithPolicy(week models.ReservationWeek, maxSlots, minMinutes int) models.WeekVerdict {
	verdict := models.WeekVerdict{OK: true}
	for _, day := range models.Weekdays {
		dv := ValidateDayWithPolicy(week[day], maxSlots, minMinutes)
		if dv.OK {
			continue
		}
		if verdict.PerDay == nil {
			verdict.PerDay = make(map[models.Weekday][]string)
		}
		verdict.PerDay[day] = dv.Errors
		verdict.OK = false
	}
	return verdict
}

// NormalizeWeek returns a copy of week with every day's slot list
// normalized (sorted, deduplicated, cloned). All seven weekdays are present
// in the result so stored settings always have the full canonical shape.
func NormalizeWeek(week models.ReservationWeek) models.ReservationWeek {
	normalized := make(models.ReservationWeek, len(models.Weekdays))
	for _, day := range models.Weekdays {
		normalized[day] = Normalize(week[day])
	}
	return normalized
}
