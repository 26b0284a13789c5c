package schedule

import (
	"reflect"
	"testing"

	"branchly/models"
)

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name       string
		slots      []models.Slot
		wantOK     bool
		wantErrors []string
	}{
		{
			name:   "empty day is valid",
			slots:  nil,
			wantOK: true,
		},
		{
			name:   "single clean slot",
			slots:  []models.Slot{slot("09:00", "12:00")},
			wantOK: true,
		},
		{
			name: "back-to-back slots are valid",
			slots: []models.Slot{
				slot("09:00", "12:00"),
				slot("12:00", "15:00"),
				slot("15:00", "18:00"),
			},
			wantOK: true,
		},
		{
			name:       "format error short-circuits the slot",
			slots:      []models.Slot{slot("25:00", "12:00")},
			wantOK:     false,
			wantErrors: []string{KeyFormat},
		},
		{
			name: "overlapping pair reported once",
			slots: []models.Slot{
				slot("09:00", "12:00"),
				slot("11:00", "14:00"),
			},
			wantOK:     false,
			wantErrors: []string{KeyOverlap},
		},
		{
			name: "overnight slot reported",
			slots: []models.Slot{
				slot("22:00", "02:00"),
			},
			wantOK:     false,
			wantErrors: []string{KeyOvernight},
		},
		{
			name: "independent errors aggregate in order",
			slots: []models.Slot{
				slot("9:00", "10:00"),  // format
				slot("14:00", "13:00"), // overnight
				slot("15:00", "17:00"), // overlaps the next
				slot("16:00", "18:00"),
			},
			wantOK:     false,
			wantErrors: []string{KeyFormat, KeyOvernight, KeyOverlap},
		},
		{
			name: "malformed slot excluded from overlap scan",
			slots: []models.Slot{
				slot("25:00", "12:00"),
				slot("09:00", "12:00"),
			},
			wantOK:     false,
			wantErrors: []string{KeyFormat},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateDayWithLimit(tc.slots, 4)
			if got.OK != tc.wantOK || !reflect.DeepEqual(got.Errors, tc.wantErrors) {
				t.Errorf("ValidateDayWithLimit(%v) = %+v, want ok=%v errors=%v",
					tc.slots, got, tc.wantOK, tc.wantErrors)
			}
		})
	}
}

func TestValidateDayLimitShortCircuits(t *testing.T) {
	// Four slots against the default limit of three: the verdict must be
	// exactly [errors.max], with no per-slot checks run, even though the
	// slots below also overlap and one is malformed.
	slots := []models.Slot{
		slot("09:00", "12:00"),
		slot("11:00", "14:00"),
		slot("25:00", "16:00"),
		slot("16:00", "18:00"),
	}

	got := ValidateDay(slots)
	want := models.DayVerdict{OK: false, Errors: []string{KeyMax}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateDay(%v) = %+v, want %+v", slots, got, want)
	}
}

func TestValidateDayWithPolicyMinimumDuration(t *testing.T) {
	slots := []models.Slot{slot("09:00", "09:10")}

	// Ten minutes passes the default minimum but not a 30-minute policy.
	if got := ValidateDayWithPolicy(slots, DefaultMaxSlotsPerDay, 30); got.OK ||
		!reflect.DeepEqual(got.Errors, []string{KeyOrder}) {
		t.Errorf("ValidateDayWithPolicy(min=30) = %+v, want errors=[%s]", got, KeyOrder)
	}
	if got := ValidateDay(slots); !got.OK {
		t.Errorf("ValidateDay with default minimum = %+v, want ok", got)
	}
	// Non-positive minimum falls back to the default.
	if got := ValidateDayWithPolicy(slots, DefaultMaxSlotsPerDay, 0); !got.OK {
		t.Errorf("ValidateDayWithPolicy(min=0) = %+v, want ok", got)
	}
}

func TestValidateDayAtExactLimit(t *testing.T) {
	// The limit is on exceeding the count; a day holding exactly the
	// maximum still gets full per-slot validation.
	slots := []models.Slot{
		slot("09:00", "10:00"),
		slot("10:00", "11:00"),
		slot("11:00", "12:00"),
	}

	if got := ValidateDay(slots); !got.OK {
		t.Errorf("ValidateDay at exact limit = %+v, want ok", got)
	}
}
