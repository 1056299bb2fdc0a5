package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"grocerypro-backend/config"
	"grocerypro-backend/database"
	_ "grocerypro-backend/docs"
	"grocerypro-backend/routes"
	"grocerypro-backend/services"
)

//	@title			GroceryPro API
//	@version		1.0
//	@description	Multi-tenant grocery-shop management backend.
//	@BasePath		/

func main() {
	config.LoadEnv()

	logger := config.NewLogger()
	defer func() {
		_ = logger.Sync()
	}()

	if config.Getenv("ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.ConnectDB(); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// A failed migration must abort startup; the server never runs against a
	// half-migrated schema.
	if err := database.Migrate(config.DB, config.Getenv("MIGRATIONS_PATH", "migrations"), logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := database.Seed(config.DB, config.Getenv("SEEDS_PATH", "seeds"), logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	if config.GetenvBool("SUMMARY_ENABLED") {
		summaryService := services.NewSummaryService(config.DB, logger)
		if err := summaryService.StartScheduler(); err != nil {
			logger.Fatal("Failed to start summary scheduler", zap.Error(err))
		}
	}

	router := routes.SetupRouter(logger)

	port := config.Getenv("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
