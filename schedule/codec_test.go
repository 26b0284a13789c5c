package schedule

import "testing"

func TestParseTime(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"00:01", 1, true},
		{"01:00", 60, true},
		{"09:30", 570, true},
		{"12:00", 720, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"25:00", 0, false},
		{"23:60", 0, false},
		{"99:99", 0, false},
		{"9:00", 0, false},
		{"09:0", 0, false},
		{"09:000", 0, false},
		{"09-00", 0, false},
		{"0900", 0, false},
		{"ab:cd", 0, false},
		{"0a:00", 0, false},
		{"09:00 ", 0, false},
		{" 09:00", 0, false},
		{"", 0, false},
		{"::", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseTime(tc.input)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseTime(%q) = (%d, %v), want (%d, %v)",
					tc.input, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "00:00"},
		{0, 1, "00:01"},
		{9, 5, "09:05"},
		{12, 30, "12:30"},
		{23, 59, "23:59"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.hour, tc.minute); got != tc.want {
			t.Errorf("FormatTime(%d, %d) = %q, want %q", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestFromMinutesClampsRange(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{-100, "00:00"},
		{-1, "00:00"},
		{0, "00:00"},
		{1, "00:01"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "23:59"},
		{100000, "23:59"},
	}

	for _, tc := range tests {
		if got := FromMinutes(tc.total); got != tc.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for minutes := 0; minutes < MinutesPerDay; minutes += 7 {
		text := FromMinutes(minutes)
		got, ok := ParseTime(text)
		if !ok || got != minutes {
			t.Fatalf("round trip broke at %d: FromMinutes -> %q -> (%d, %v)", minutes, text, got, ok)
		}
	}
}

func TestCompareTimes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"a before b", "09:00", "10:00", -1},
		{"a after b", "18:30", "08:15", 1},
		{"equal", "12:00", "12:00", 0},
		{"adjacent minutes", "11:59", "12:00", -1},
		{"malformed left treated equal", "25:00", "12:00", 0},
		{"malformed right treated equal", "12:00", "xx:yy", 0},
		{"both malformed treated equal", "", "9:0", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareTimes(tc.a, tc.b); got != tc.want {
				t.Errorf("CompareTimes(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
