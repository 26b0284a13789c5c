package branch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"branchly/models"
	"branchly/utils"
)

const settingsCacheTTL = 15 * time.Minute

func settingsCacheKey(branchID string) string {
	return "branch:settings:" + branchID
}

// GetSettingsSnapshot returns the cached settings snapshot for a branch,
// falling back to (and repopulating from) the database on a miss.
func (s *DefaultBranchService) GetSettingsSnapshot(ctx context.Context, id string) (*models.BranchSettingsDTO, error) {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, settingsCacheKey(id)).Result()
		if err == nil {
			var dto models.BranchSettingsDTO
			if err := json.Unmarshal([]byte(data), &dto); err == nil {
				return &dto, nil
			}
			// Corrupt entry: drop it and fall through to the database.
			s.Cache.Del(ctx, settingsCacheKey(id))
		} else if err != redis.Nil {
			utils.GetLogger().Warn("Settings cache read failed",
				zap.String("branchID", id), zap.Error(err))
		}
	}

	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := s.settingsDTO(branch)
	s.cacheSettings(ctx, dto)
	return dto, nil
}

// RefreshSettingsSnapshot recomputes the cached snapshot from the database.
// The settings worker calls this when it consumes a refresh task.
func (s *DefaultBranchService) RefreshSettingsSnapshot(ctx context.Context, id string) error {
	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return err
	}
	s.cacheSettings(ctx, s.settingsDTO(branch))
	return nil
}

func (s *DefaultBranchService) cacheSettings(ctx context.Context, dto *models.BranchSettingsDTO) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(dto)
	if err != nil {
		utils.GetLogger().Error("Failed to marshal settings snapshot",
			zap.String("branchID", dto.ID), zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, settingsCacheKey(dto.ID), data, settingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Settings cache write failed",
			zap.String("branchID", dto.ID), zap.Error(err))
	}
}

func (s *DefaultBranchService) invalidateSettings(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, settingsCacheKey(id)).Err(); err != nil {
		utils.GetLogger().Warn("Settings cache invalidation failed",
			zap.String("branchID", id), zap.Error(err))
	}
}

// enqueueSettingsRefresh hands the branch to the background worker so the
// cached snapshot is rebuilt outside the request path.
func (s *DefaultBranchService) enqueueSettingsRefresh(branchID string) {
	if s.Queue == nil {
		return
	}
	payload, err := json.Marshal(models.SettingsRefreshPayload{BranchID: branchID})
	if err != nil {
		utils.GetLogger().Error("Failed to marshal refresh payload",
			zap.String("branchID", branchID), zap.Error(err))
		return
	}
	task := asynq.NewTask(models.TaskTypeSettingsRefresh, payload)
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Warn("Failed to enqueue settings refresh",
			zap.String("branchID", branchID), zap.Error(err))
	}
}
