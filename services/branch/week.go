package branch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"branchly/models"
	"branchly/schedule"
	"branchly/utils"
)

// GetReservationWeek returns the stored reservation week for a branch.
func (s *DefaultBranchService) GetReservationWeek(ctx context.Context, id string) (models.ReservationWeek, error) {
	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	return branch.ReservationWeek, nil
}

// ValidateReservationWeek runs the schedule engine over a week exactly as
// supplied, without persisting anything. The admin frontend calls this on
// every edit of a time field; the input is never reordered so error indexes
// line up with the form fields the operator sees, and repeated calls over
// the same input always yield the same verdict.
func (s *DefaultBranchService) ValidateReservationWeek(week models.ReservationWeek) models.WeekVerdict {
	return schedule.ValidateWeekWithPolicy(week, s.maxSlots(), s.minMinutes())
}

// UpdateReservationWeek normalizes, validates and persists a new reservation
// week for a branch. Normalization runs first so the stored form is
// canonical (sorted, deduplicated) and so a duplicated slot collapses
// instead of tripping the overlap policy against its own copy. An invalid
// week is not an internal error: the verdict is returned so the caller can
// surface per-day error keys, and nothing is written.
func (s *DefaultBranchService) UpdateReservationWeek(ctx context.Context, id string, week models.ReservationWeek) (*models.BranchSettingsDTO, *models.WeekVerdict, error) {
	logger := utils.GetLogger()

	for day := range week {
		if !models.IsValidWeekday(day) {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
		}
	}

	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	normalized := schedule.NormalizeWeek(week)
	verdict := schedule.ValidateWeekWithPolicy(normalized, s.maxSlots(), s.minMinutes())
	if !verdict.OK {
		logger.Info("Rejected invalid reservation week",
			zap.String("branchID", id),
			zap.Int("failingDays", len(verdict.PerDay)))
		return nil, &verdict, nil
	}

	if err := s.Repo.UpdateWeek(ctx, id, normalized); err != nil {
		return nil, nil, fmt.Errorf("failed to store reservation week for branch %s: %w", id, err)
	}

	branch.ReservationWeek = normalized
	dto := s.settingsDTO(branch)
	s.cacheSettings(ctx, dto)
	s.enqueueSettingsRefresh(id)

	logger.Info("Reservation week updated",
		zap.String("branchID", id),
		zap.Int("slotCount", normalized.SlotCount()))
	return dto, nil, nil
}

func (s *DefaultBranchService) settingsDTO(branch *models.Branch) *models.BranchSettingsDTO {
	return &models.BranchSettingsDTO{
		ID:              branch.ID,
		Name:            branch.Name,
		AcceptsReserves: branch.AcceptsReserves,
		ReservationWeek: branch.ReservationWeek,
		UpdatedAt:       branch.UpdatedAt,
	}
}
