package branch

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	branchRepo "branchly/database/repository/branch"
	"branchly/models"
	"branchly/schedule"
)

// BranchService manages restaurant branches and their reservation
// availability settings.
type BranchService interface {
	// Branch lifecycle
	CreateBranch(ctx context.Context, req models.CreateBranchRequest) (*models.Branch, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	ListBranches(ctx context.Context) ([]models.Branch, error)
	UpdateBranch(ctx context.Context, id string, req models.UpdateBranchRequest) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id string) error

	// Reservation week management
	GetReservationWeek(ctx context.Context, id string) (models.ReservationWeek, error)
	ValidateReservationWeek(week models.ReservationWeek) models.WeekVerdict
	UpdateReservationWeek(ctx context.Context, id string, week models.ReservationWeek) (*models.BranchSettingsDTO, *models.WeekVerdict, error)

	// Reservation availability toggling
	EnableReservations(ctx context.Context, id string) (*models.Branch, error)
	DisableReservations(ctx context.Context, id string) (*models.Branch, error)

	// Cached settings snapshot, recomputed by the settings worker
	GetSettingsSnapshot(ctx context.Context, id string) (*models.BranchSettingsDTO, error)
	RefreshSettingsSnapshot(ctx context.Context, id string) error
}

// DefaultBranchService is the production implementation. Cache and Queue may
// be nil (caching and background refreshes are then skipped), which keeps the
// service testable without redis.
type DefaultBranchService struct {
	Repo  branchRepo.BranchRepository
	Cache *redis.Client
	Queue *asynq.Client

	// Policy overrides; zero values fall back to the engine defaults.
	MaxSlotsPerDay int
	MinSlotMinutes int
}

func (s *DefaultBranchService) maxSlots() int {
	if s.MaxSlotsPerDay > 0 {
		return s.MaxSlotsPerDay
	}
	return schedule.DefaultMaxSlotsPerDay
}

func (s *DefaultBranchService) minMinutes() int {
	if s.MinSlotMinutes > 0 {
		return s.MinSlotMinutes
	}
	return schedule.DefaultMinSlotMinutes
}
