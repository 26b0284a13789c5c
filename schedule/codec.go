package schedule

import "fmt"

// MinutesPerDay is the number of minutes addressable within one day;
// valid minute-of-day values lie in [0, MinutesPerDay-1].
const MinutesPerDay = 24 * 60

// ParseTime converts a strict "HH:mm" string into minutes from midnight.
// HH must be two digits in [00,23] and mm two digits in [00,59]; anything
// else (wrong length, stray characters, out-of-range fields) returns
// (0, false). It never panics.
func ParseTime(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatTime renders an hour/minute pair as zero-padded "HH:mm". Range
// checking is the caller's job; values are validated at parse time.
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FromMinutes converts minutes from midnight back to "HH:mm", clamping the
// input into [0, 1439] first so arithmetic overflow elsewhere can never
// produce an out-of-range time.
func FromMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	if total > MinutesPerDay-1 {
		total = MinutesPerDay - 1
	}
	return FormatTime(total/60, total%60)
}

// CompareTimes orders two "HH:mm" strings by minute value, returning -1, 0
// or 1. If either side fails to parse the pair is treated as equal; callers
// needing strict ordering over malformed input must pre-validate.
func CompareTimes(a, b string) int {
	am, aok := ParseTime(a)
	bm, bok := ParseTime(b)
	if !aok || !bok {
		return 0
	}
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}
