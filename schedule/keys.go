// Package schedule implements the reservation time-window validation and
// normalization engine. Every function is pure: no I/O, no retained state,
// safe for concurrent callers. Validation outcomes are returned as verdicts
// carrying opaque error keys; the engine never panics on malformed input.
package schedule

// Error keys emitted by the engine. They are stable identifiers resolved by
// the admin frontend's localization catalog, never user-facing text.
const (
	KeyFormat    = "errors.format"
	KeyOrder     = "errors.order"
	KeyOverlap   = "errors.overlap"
	KeyOvernight = "errors.overnightNotSupported"
	KeyMax       = "errors.max"
)

const (
	// DefaultMaxSlotsPerDay caps how many reservation windows a branch may
	// define for a single weekday.
	DefaultMaxSlotsPerDay = 3

	// DefaultMinSlotMinutes is the minimum duration of a single window.
	DefaultMinSlotMinutes = 1
)

// Verdict is the outcome of a single policy check. Error is set only when
// OK is false and holds one of the Key* constants.
type Verdict struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func pass() Verdict {
	return Verdict{OK: true}
}

func fail(key string) Verdict {
	return Verdict{OK: false, Error: key}
}
