package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wineworld/wineworld-backend/config"
	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/controller"
	"github.com/wineworld/wineworld-backend/internal/app/repository"
	"github.com/wineworld/wineworld-backend/internal/app/service"
	"github.com/wineworld/wineworld-backend/internal/db"
	"github.com/wineworld/wineworld-backend/internal/router"
	"github.com/wineworld/wineworld-backend/internal/scheduler"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"github.com/wineworld/wineworld-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting WineWorld Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	postRepo := repository.NewPostRepository(db.GetDB())
	wineRepo := repository.NewWineRepository(db.GetDB())
	regionRepo := repository.NewRegionRepository(db.GetDB())
	vineyardRepo := repository.NewVineyardRepository(db.GetDB())

	// Build the initial catalog snapshot. The server must not come up with
	// an unresolved association graph.
	posts, err := postRepo.FindAll()
	if err != nil {
		logger.Fatal("Failed to load posts", err)
	}
	wines, err := wineRepo.FindAll()
	if err != nil {
		logger.Fatal("Failed to load wines", err)
	}
	regions, err := regionRepo.FindAll()
	if err != nil {
		logger.Fatal("Failed to load regions", err)
	}
	vineyards, err := vineyardRepo.FindAll()
	if err != nil {
		logger.Fatal("Failed to load vineyards", err)
	}

	snapshot, err := catalog.Build(posts, wines, regions, vineyards)
	if err != nil {
		logger.Fatal("Failed to build catalog", err)
	}
	catalogs := catalog.NewHolder(snapshot)

	// Initialize optional response cache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, serving without response cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}

	// Initialize services
	wineService := service.NewWineService(catalogs, cfg.Catalog.PageSize)
	regionService := service.NewRegionService(catalogs, cfg.Catalog.PageSize)
	vineyardService := service.NewVineyardService(catalogs, cfg.Catalog.PageSize)

	// Initialize controllers
	wineController := controller.NewWineController(wineService)
	regionController := controller.NewRegionController(regionService)
	vineyardController := controller.NewVineyardController(vineyardService)

	// Start the scheduled rebuild-and-swap job
	catalogScheduler := scheduler.NewCatalogScheduler(
		cfg.Catalog.RebuildSchedule,
		catalogs,
		postRepo,
		wineRepo,
		regionRepo,
		vineyardRepo,
	)
	if err := catalogScheduler.Start(); err != nil {
		logger.Fatal("Failed to start catalog scheduler", err)
	}
	defer catalogScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		wineController,
		regionController,
		vineyardController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address":  addr,
			"pid":      os.Getpid(),
			"build_id": snapshot.BuildID.String(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
