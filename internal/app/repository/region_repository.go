package repository

import (
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"gorm.io/gorm"
)

type RegionRepository interface {
	FindAll() ([]*model.Region, error)
	BulkCreate(regions []*model.Region, batchSize int) error
	ReplaceAll(regions []*model.Region, batchSize int) error
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) FindAll() ([]*model.Region, error) {
	var regions []*model.Region
	if err := r.db.Order("id ASC").Find(&regions).Error; err != nil {
		logger.Error("Failed to load regions from database", err)
		return nil, err
	}

	logger.Debug("Regions loaded from database", map[string]interface{}{
		"count": len(regions),
	})
	return regions, nil
}

func (r *regionRepository) BulkCreate(regions []*model.Region, batchSize int) error {
	if err := r.db.CreateInBatches(regions, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create regions", err, map[string]interface{}{
			"count": len(regions),
		})
		return err
	}

	logger.Info("Regions bulk created", map[string]interface{}{
		"count": len(regions),
	})
	return nil
}

func (r *regionRepository) ReplaceAll(regions []*model.Region, batchSize int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Region{}).Error; err != nil {
			logger.Error("Failed to clear regions table", err)
			return err
		}
		if err := tx.CreateInBatches(regions, batchSize).Error; err != nil {
			logger.Error("Failed to insert replacement regions", err, map[string]interface{}{
				"count": len(regions),
			})
			return err
		}
		return nil
	})
}
