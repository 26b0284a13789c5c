// File: branchly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"branchly/config"
	"branchly/cron"
	"branchly/database"
	branchRepo "branchly/database/repository/branch"
	"branchly/handlers"
	"branchly/middleware"
	"branchly/routes"
	branchSvc "branchly/services/branch"
	"branchly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSettingsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := branchRepo.NewMongoBranchRepo()
	if err := repo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure branch indexes: %v", err)
	}

	// background queue client.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	// services.
	branchService := &branchSvc.DefaultBranchService{
		Repo:           repo,
		Cache:          utils.GetSettingsCacheClient(),
		Queue:          queueClient,
		MaxSlotsPerDay: config.AppConfig.MaxSlotsPerDay,
		MinSlotMinutes: config.AppConfig.MinSlotMinutes,
	}

	// background settings worker.
	cron.InitSettingsWorker(branchService)

	branchHandler := handlers.NewBranchHandler(branchService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminLoginHandler: handlers.AdminLoginHandler,

		CreateBranchHandler: branchHandler.CreateBranchHandler,
		GetBranchHandler:    branchHandler.GetBranchHandler,
		ListBranchesHandler: branchHandler.ListBranchesHandler,
		UpdateBranchHandler: branchHandler.UpdateBranchHandler,
		DeleteBranchHandler: branchHandler.DeleteBranchHandler,

		GetReservationWeekHandler:      branchHandler.GetReservationWeekHandler,
		ValidateReservationWeekHandler: branchHandler.ValidateReservationWeekHandler,
		UpdateReservationWeekHandler:   branchHandler.UpdateReservationWeekHandler,
		GetSettingsSnapshotHandler:     branchHandler.GetSettingsSnapshotHandler,
		EnableReservationsHandler:      branchHandler.EnableReservationsHandler,
		DisableReservationsHandler:     branchHandler.DisableReservationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks backing /health.
	utils.StartHealthMonitor(utils.GetSettingsCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
