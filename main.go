// File: vaktplan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaktplan/config"
	"vaktplan/database"
	scheduleRepo "vaktplan/database/repository/schedule"
	"vaktplan/handlers"
	"vaktplan/middleware"
	"vaktplan/routes"
	"vaktplan/services/schedule"
	"vaktplan/solver"
	"vaktplan/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	historyRepo := scheduleRepo.NewMongoHistoryRepo()

	// services.
	solverClient := solver.NewHTTPClient(
		config.AppConfig.SolverBaseURL,
		time.Duration(config.AppConfig.SolverTimeoutSeconds)*time.Second,
	)
	sessionStore := &schedule.RedisSessionStore{
		Client: utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Solver:   solverClient,
		Sessions: sessionStore,
		History:  historyRepo,
	}
	coordinator := &schedule.DefaultEditCoordinator{
		Solver:   solverClient,
		Sessions: sessionStore,
		History:  historyRepo,
		StateTTL: sessionStore.TTL,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, coordinator, historyRepo, logger)
	routes.RegisterRoutes(router, scheduleHandler)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("Server exited gracefully")
}
