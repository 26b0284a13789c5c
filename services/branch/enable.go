package branch

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"branchly/models"
	"branchly/utils"
)

// EnableReservations switches a branch to accepting reservations. The
// stored week must validate and define at least one slot; enabling a branch
// with nothing bookable would only confuse the reservation frontend.
func (s *DefaultBranchService) EnableReservations(ctx context.Context, id string) (*models.Branch, error) {
	logger := utils.GetLogger()

	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	if verdict := s.ValidateReservationWeek(branch.ReservationWeek); !verdict.OK {
		return nil, ErrWeekNotValid
	}
	if branch.ReservationWeek.SlotCount() == 0 {
		return nil, ErrNoSlots
	}

	if err := s.Repo.SetAcceptsReserves(ctx, id, true); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to enable reservations for branch %s: %w", id, err)
	}

	branch.AcceptsReserves = true
	s.invalidateSettings(ctx, id)
	s.enqueueSettingsRefresh(id)

	logger.Info("Reservations enabled", zap.String("branchID", id))
	return branch, nil
}

// DisableReservations switches a branch to rejecting new reservations. No
// validation applies: disabling is always allowed.
func (s *DefaultBranchService) DisableReservations(ctx context.Context, id string) (*models.Branch, error) {
	logger := utils.GetLogger()

	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetAcceptsReserves(ctx, id, false); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to disable reservations for branch %s: %w", id, err)
	}

	branch.AcceptsReserves = false
	s.invalidateSettings(ctx, id)
	s.enqueueSettingsRefresh(id)

	logger.Info("Reservations disabled", zap.String("branchID", id))
	return branch, nil
}
