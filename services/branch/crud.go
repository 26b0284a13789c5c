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

// CreateBranch registers a new branch with an empty reservation week and
// reservations disabled. The admin enables reservations once a valid week
// has been configured.
func (s *DefaultBranchService) CreateBranch(ctx context.Context, req models.CreateBranchRequest) (*models.Branch, error) {
	logger := utils.GetLogger()

	branch := &models.Branch{
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Timezone:        req.Timezone,
		AcceptsReserves: false,
		ReservationWeek: models.EmptyReservationWeek(),
	}

	if err := s.Repo.Create(ctx, branch); err != nil {
		logger.Error("Failed to create branch", zap.String("name", req.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	logger.Info("Branch created", zap.String("branchID", branch.ID), zap.String("name", branch.Name))
	return branch, nil
}

// GetBranch fetches a branch by ID.
func (s *DefaultBranchService) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	branch, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to fetch branch %s: %w", id, err)
	}
	return branch, nil
}

// ListBranches returns all branches sorted by name.
func (s *DefaultBranchService) ListBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// UpdateBranch applies partial profile updates (name, address, phone,
// timezone). Reservation settings have their own entry points.
func (s *DefaultBranchService) UpdateBranch(ctx context.Context, id string, req models.UpdateBranchRequest) (*models.Branch, error) {
	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Timezone != nil {
		branch.Timezone = *req.Timezone
	}

	if err := s.Repo.Update(ctx, branch); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to update branch %s: %w", id, err)
	}

	s.invalidateSettings(ctx, id)
	return branch, nil
}

// DeleteBranch removes a branch and its cached settings.
func (s *DefaultBranchService) DeleteBranch(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBranchNotFound
		}
		return fmt.Errorf("failed to delete branch %s: %w", id, err)
	}

	s.invalidateSettings(ctx, id)
	utils.GetLogger().Info("Branch deleted", zap.String("branchID", id))
	return nil
}
