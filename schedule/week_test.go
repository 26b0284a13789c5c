package schedule

import (
	"reflect"
	"testing"

	"branchly/models"
)

func TestValidateWeekOverlappingSaturday(t *testing.T) {
	week := models.EmptyReservationWeek()
	week[models.Saturday] = []models.Slot{
		slot("09:00", "12:00"),
		slot("11:00", "14:00"),
	}

	got := ValidateWeek(week)
	if got.OK {
		t.Fatalf("week with overlapping saturday validated ok: %+v", got)
	}
	if len(got.PerDay) != 1 {
		t.Fatalf("PerDay should hold only the failing day, got %v", got.PerDay)
	}
	if !reflect.DeepEqual(got.PerDay[models.Saturday], []string{KeyOverlap}) {
		t.Errorf("PerDay[saturday] = %v, want [%s]", got.PerDay[models.Saturday], KeyOverlap)
	}
}

func TestValidateWeekAllEmpty(t *testing.T) {
	got := ValidateWeek(models.EmptyReservationWeek())
	if !got.OK {
		t.Errorf("empty week should be valid: %+v", got)
	}
	if len(got.PerDay) != 0 {
		t.Errorf("empty week should have empty PerDay, got %v", got.PerDay)
	}
}

func TestValidateWeekMissingDaysAreValid(t *testing.T) {
	// A caller-supplied map may omit days entirely; absent days behave
	// like empty ones.
	week := models.ReservationWeek{
		models.Monday: {slot("09:00", "12:00")},
	}

	if got := ValidateWeek(week); !got.OK {
		t.Errorf("week with only monday set should be valid: %+v", got)
	}
}

func TestValidateWeekCollectsMultipleDays(t *testing.T) {
	week := models.EmptyReservationWeek()
	week[models.Sunday] = []models.Slot{slot("22:00", "02:00")}
	week[models.Wednesday] = []models.Slot{
		slot("08:00", "09:00"),
		slot("09:00", "10:00"),
		slot("10:00", "11:00"),
		slot("11:00", "12:00"),
	}

	got := ValidateWeek(week)
	if got.OK {
		t.Fatalf("week with two bad days validated ok: %+v", got)
	}
	if !reflect.DeepEqual(got.PerDay[models.Sunday], []string{KeyOvernight}) {
		t.Errorf("PerDay[sunday] = %v, want [%s]", got.PerDay[models.Sunday], KeyOvernight)
	}
	if !reflect.DeepEqual(got.PerDay[models.Wednesday], []string{KeyMax}) {
		t.Errorf("PerDay[wednesday] = %v, want [%s]", got.PerDay[models.Wednesday], KeyMax)
	}
	if len(got.PerDay) != 2 {
		t.Errorf("PerDay should hold exactly the failing days, got %v", got.PerDay)
	}
}

func TestValidateWeekWithLimitOverride(t *testing.T) {
	week := models.EmptyReservationWeek()
	week[models.Friday] = []models.Slot{
		slot("08:00", "09:00"),
		slot("10:00", "11:00"),
		slot("12:00", "13:00"),
		slot("14:00", "15:00"),
	}

	if got := ValidateWeekWithLimit(week, 5); !got.OK {
		t.Errorf("four slots under limit 5 should validate: %+v", got)
	}
	if got := ValidateWeekWithLimit(week, 3); got.OK {
		t.Errorf("four slots under limit 3 should fail: %+v", got)
	}
}

func TestNormalizeWeek(t *testing.T) {
	week := models.ReservationWeek{
		models.Monday: {
			slot("18:00", "20:00"),
			slot("08:00", "10:00"),
			slot("18:00", "20:00"),
		},
	}

	got := NormalizeWeek(week)

	want := []models.Slot{slot("08:00", "10:00"), slot("18:00", "20:00")}
	if !reflect.DeepEqual(got[models.Monday], want) {
		t.Errorf("NormalizeWeek monday = %v, want %v", got[models.Monday], want)
	}

	// Every weekday is materialized in the canonical shape.
	for _, day := range models.Weekdays {
		if _, present := got[day]; !present {
			t.Errorf("NormalizeWeek omitted %s", day)
		}
	}

	// Input is untouched.
	if len(week) != 1 || len(week[models.Monday]) != 3 {
		t.Errorf("NormalizeWeek mutated its input: %v", week)
	}
}
