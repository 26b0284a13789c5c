package branch

import "errors"

var (
	// ErrBranchNotFound indicates the requested branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInvalidWeekday indicates a reservation week payload carried a key
	// outside the fixed weekday set.
	ErrInvalidWeekday = errors.New("invalid weekday key in reservation week")

	// ErrWeekNotValid indicates reservations cannot be enabled because the
	// stored week fails validation.
	ErrWeekNotValid = errors.New("stored reservation week is not valid")

	// ErrNoSlots indicates reservations cannot be enabled on a branch whose
	// week defines no slots at all.
	ErrNoSlots = errors.New("reservation week has no slots")
)
