package repository

import (
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"gorm.io/gorm"
)

type VineyardRepository interface {
	FindAll() ([]*model.Vineyard, error)
	BulkCreate(vineyards []*model.Vineyard, batchSize int) error
	ReplaceAll(vineyards []*model.Vineyard, batchSize int) error
}

type vineyardRepository struct {
	db *gorm.DB
}

func NewVineyardRepository(db *gorm.DB) VineyardRepository {
	return &vineyardRepository{db: db}
}

func (r *vineyardRepository) FindAll() ([]*model.Vineyard, error) {
	var vineyards []*model.Vineyard
	if err := r.db.Order("id ASC").Find(&vineyards).Error; err != nil {
		logger.Error("Failed to load vineyards from database", err)
		return nil, err
	}

	logger.Debug("Vineyards loaded from database", map[string]interface{}{
		"count": len(vineyards),
	})
	return vineyards, nil
}

func (r *vineyardRepository) BulkCreate(vineyards []*model.Vineyard, batchSize int) error {
	if err := r.db.CreateInBatches(vineyards, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create vineyards", err, map[string]interface{}{
			"count": len(vineyards),
		})
		return err
	}

	logger.Info("Vineyards bulk created", map[string]interface{}{
		"count": len(vineyards),
	})
	return nil
}

func (r *vineyardRepository) ReplaceAll(vineyards []*model.Vineyard, batchSize int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Vineyard{}).Error; err != nil {
			logger.Error("Failed to clear vineyards table", err)
			return err
		}
		if err := tx.CreateInBatches(vineyards, batchSize).Error; err != nil {
			logger.Error("Failed to insert replacement vineyards", err, map[string]interface{}{
				"count": len(vineyards),
			})
			return err
		}
		return nil
	})
}
