package models

// Slot represents one reservation window within a single day.
// Start and End are wall-clock times in strict "HH:mm" form (e.g. "09:30").
type Slot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Weekday is one of the seven fixed calendar-day labels. The reservation
// week starts on Saturday in this domain.
type Weekday string

const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays is the canonical ordering of the reservation week.
var Weekdays = []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// IsValidWeekday reports whether d belongs to the fixed weekday set.
func IsValidWeekday(d Weekday) bool {
	switch d {
	case Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// ReservationWeek maps every weekday to its list of reservation slots.
// A missing or empty day means the branch takes no reservations that day.
type ReservationWeek map[Weekday][]Slot

// EmptyReservationWeek returns a week with all seven days present and empty.
func EmptyReservationWeek() ReservationWeek {
	week := make(ReservationWeek, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = []Slot{}
	}
	return week
}

// SlotCount returns the total number of slots across the week.
func (w ReservationWeek) SlotCount() int {
	total := 0
	for _, slots := range w {
		total += len(slots)
	}
	return total
}

// DayVerdict is the result of validating a single day's slot list. Errors
// holds opaque error keys in discovery order; the admin frontend resolves
// them against its localization catalog.
type DayVerdict struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

// WeekVerdict is the composite result of validating a full reservation week.
// PerDay contains only days that reported at least one error.
type WeekVerdict struct {
	OK     bool                 `json:"ok"`
	PerDay map[Weekday][]string `json:"perDay,omitempty"`
}
