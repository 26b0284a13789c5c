package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"branchly/config"
	"branchly/models"
	branchSvc "branchly/services/branch"
)

// QueueRedisOpt returns the asynq redis connection settings for the
// background settings queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitSettingsWorker runs the async settings-refresh worker in background.
// It consumes refresh tasks enqueued after branch settings writes and
// rebuilds the cached snapshot outside the request path.
func InitSettingsWorker(svc branchSvc.BranchService) {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(models.TaskTypeSettingsRefresh, handleSettingsRefresh(svc))

	go func() {
		log.Println("[SettingsWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SettingsWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SettingsWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSettingsRefresh(svc branchSvc.BranchService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SettingsRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SettingsWorker] invalid payload: %v", err)
			return err
		}

		if err := svc.RefreshSettingsSnapshot(ctx, p.BranchID); err != nil {
			log.Printf("[SettingsWorker] failed to refresh settings for branch %s: %v", p.BranchID, err)
			return err
		}
		return nil
	}
}
