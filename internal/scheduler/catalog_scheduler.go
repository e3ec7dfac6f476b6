package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/repository"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"github.com/wineworld/wineworld-backend/pkg/redis"
)

// CatalogScheduler periodically reloads the entity collections from the
// store, rebuilds the association graph and swaps the served snapshot.
// A failed rebuild leaves the previous snapshot serving.
type CatalogScheduler struct {
	cron     *cron.Cron
	schedule string
	catalogs *catalog.Holder

	postRepo     repository.PostRepository
	wineRepo     repository.WineRepository
	regionRepo   repository.RegionRepository
	vineyardRepo repository.VineyardRepository
}

func NewCatalogScheduler(
	schedule string,
	catalogs *catalog.Holder,
	postRepo repository.PostRepository,
	wineRepo repository.WineRepository,
	regionRepo repository.RegionRepository,
	vineyardRepo repository.VineyardRepository,
) *CatalogScheduler {
	return &CatalogScheduler{
		cron:         cron.New(),
		schedule:     schedule,
		catalogs:     catalogs,
		postRepo:     postRepo,
		wineRepo:     wineRepo,
		regionRepo:   regionRepo,
		vineyardRepo: vineyardRepo,
	}
}

// Start registers the rebuild job. An empty schedule disables the scheduler.
func (s *CatalogScheduler) Start() error {
	if s.schedule == "" {
		logger.Info("Catalog rebuild scheduler disabled", nil)
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Rebuild(); err != nil {
			logger.Error("Scheduled catalog rebuild failed, keeping previous snapshot", err)
		}
	})
	if err != nil {
		logger.Error("Failed to register catalog rebuild job", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Catalog rebuild scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

// Stop stops the scheduler
func (s *CatalogScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Catalog rebuild scheduler stopped", nil)
}

// Rebuild loads fresh entity collections, rebuilds the association graph
// and atomically swaps the served snapshot. The response cache is flushed
// afterwards so no cached page outlives its snapshot.
func (s *CatalogScheduler) Rebuild() error {
	logger.Info("Starting catalog rebuild", nil)

	posts, err := s.postRepo.FindAll()
	if err != nil {
		return err
	}
	wines, err := s.wineRepo.FindAll()
	if err != nil {
		return err
	}
	regions, err := s.regionRepo.FindAll()
	if err != nil {
		return err
	}
	vineyards, err := s.vineyardRepo.FindAll()
	if err != nil {
		return err
	}

	snapshot, err := catalog.Build(posts, wines, regions, vineyards)
	if err != nil {
		return err
	}

	s.catalogs.Swap(snapshot)

	if err := redis.FlushResponseCache(context.Background()); err != nil {
		logger.Warn("Failed to flush response cache after rebuild", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Catalog rebuild completed", map[string]interface{}{
		"build_id": snapshot.BuildID.String(),
	})
	return nil
}
