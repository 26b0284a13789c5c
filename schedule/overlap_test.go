package schedule

import (
	"testing"

	"branchly/models"
)

func slot(start, end string) models.Slot {
	return models.Slot{Start: start, End: end}
}

func TestIsStrictOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Slot
		want bool
	}{
		{"disjoint before", slot("07:00", "08:00"), slot("09:00", "12:00"), false},
		{"disjoint after", slot("13:00", "15:00"), slot("09:00", "12:00"), false},
		{"touching edges are not overlap", slot("09:00", "12:00"), slot("12:00", "15:00"), false},
		{"touching edges reversed", slot("12:00", "15:00"), slot("09:00", "12:00"), false},
		{"one minute past the edge", slot("09:00", "12:01"), slot("12:00", "15:00"), true},
		{"one minute before the edge", slot("09:00", "12:00"), slot("11:59", "15:00"), true},
		{"contained", slot("10:00", "11:00"), slot("09:00", "12:00"), true},
		{"containing", slot("09:00", "12:00"), slot("10:00", "11:00"), true},
		{"identical", slot("09:00", "12:00"), slot("09:00", "12:00"), true},
		{"malformed left overlaps nothing", slot("25:00", "12:00"), slot("09:00", "12:00"), false},
		{"malformed right overlaps nothing", slot("09:00", "12:00"), slot("12:00", "9:99"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStrictOverlap(tc.a, tc.b); got != tc.want {
				t.Errorf("IsStrictOverlap(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap is symmetric.
			if got := IsStrictOverlap(tc.b, tc.a); got != tc.want {
				t.Errorf("IsStrictOverlap(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestCanAddWithoutOverlap(t *testing.T) {
	existing := []models.Slot{
		slot("09:00", "11:00"),
		slot("13:00", "15:00"),
	}

	if got := CanAddWithoutOverlap(existing, slot("11:00", "13:00")); !got.OK {
		t.Errorf("back-to-back candidate rejected: %+v", got)
	}
	if got := CanAddWithoutOverlap(existing, slot("15:00", "18:00")); !got.OK {
		t.Errorf("trailing candidate rejected: %+v", got)
	}
	if got := CanAddWithoutOverlap(existing, slot("10:30", "12:00")); got.OK || got.Error != KeyOverlap {
		t.Errorf("overlapping candidate accepted: %+v", got)
	}
	if got := CanAddWithoutOverlap(nil, slot("09:00", "10:00")); !got.OK {
		t.Errorf("candidate against empty day rejected: %+v", got)
	}
}

func TestFindOverlapping(t *testing.T) {
	slots := []models.Slot{
		slot("08:00", "10:00"),
		slot("10:00", "12:00"),
		slot("11:00", "13:00"),
		slot("18:00", "20:00"),
	}

	got := FindOverlapping(slots, slot("09:30", "11:30"))
	want := []models.Slot{
		slot("08:00", "10:00"),
		slot("10:00", "12:00"),
		slot("11:00", "13:00"),
	}
	if len(got) != len(want) {
		t.Fatalf("FindOverlapping returned %d slots, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindOverlapping[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := FindOverlapping(slots, slot("20:00", "21:00")); len(got) != 0 {
		t.Errorf("touching target should overlap nothing, got %v", got)
	}
}
