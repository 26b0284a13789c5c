package schedule

import (
	"reflect"
	"testing"

	"branchly/models"
)

func TestNormalizeSortsByStart(t *testing.T) {
	input := []models.Slot{
		slot("18:00", "20:00"),
		slot("08:00", "10:00"),
		slot("12:00", "14:00"),
	}

	got := Normalize(input)
	want := []models.Slot{
		slot("08:00", "10:00"),
		slot("12:00", "14:00"),
		slot("18:00", "20:00"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize(%v) = %v, want %v", input, got, want)
	}
}

func TestNormalizeDeduplicates(t *testing.T) {
	input := []models.Slot{
		slot("12:00", "14:00"),
		slot("08:00", "10:00"),
		slot("12:00", "14:00"),
		slot("08:00", "10:00"),
		slot("08:00", "11:00"), // same start, different end: not a duplicate
	}

	got := Normalize(input)
	want := []models.Slot{
		slot("08:00", "10:00"),
		slot("08:00", "11:00"),
		slot("12:00", "14:00"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize(%v) = %v, want %v", input, got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]models.Slot{
		nil,
		{},
		{slot("09:00", "10:00")},
		{slot("18:00", "20:00"), slot("08:00", "10:00"), slot("18:00", "20:00")},
		{slot("xx:yy", "10:00"), slot("08:00", "10:00"), slot("", "")},
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Normalize not idempotent for %v: once=%v twice=%v", input, once, twice)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := []models.Slot{
		slot("18:00", "20:00"),
		slot("08:00", "10:00"),
		slot("08:00", "10:00"),
	}
	snapshot := make([]models.Slot, len(input))
	copy(snapshot, input)

	_ = Normalize(input)

	if !reflect.DeepEqual(input, snapshot) {
		t.Errorf("Normalize mutated its input: before=%v after=%v", snapshot, input)
	}
}

func TestNormalizeOutputIsIndependent(t *testing.T) {
	input := []models.Slot{
		slot("08:00", "10:00"),
		slot("12:00", "14:00"),
	}

	got := Normalize(input)
	got[0].Start = "00:00"
	got[1] = slot("23:00", "23:59")

	if input[0].Start != "08:00" || input[1] != slot("12:00", "14:00") {
		t.Errorf("mutating Normalize output leaked into input: %v", input)
	}
}

func TestNormalizeKeepsMalformedEntries(t *testing.T) {
	// Malformed slots sort as equal to everything; they must survive
	// normalization so the day validator can still report them.
	input := []models.Slot{
		slot("xx:yy", "10:00"),
		slot("08:00", "10:00"),
	}

	got := Normalize(input)
	if len(got) != 2 {
		t.Fatalf("Normalize dropped entries: %v", got)
	}
}
