package repository

import (
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"gorm.io/gorm"
)

type WineRepository interface {
	FindAll() ([]*model.Wine, error)
	BulkCreate(wines []*model.Wine, batchSize int) error
	ReplaceAll(wines []*model.Wine, batchSize int) error
}

type wineRepository struct {
	db *gorm.DB
}

func NewWineRepository(db *gorm.DB) WineRepository {
	return &wineRepository{db: db}
}

func (r *wineRepository) FindAll() ([]*model.Wine, error) {
	var wines []*model.Wine
	if err := r.db.Order("id ASC").Find(&wines).Error; err != nil {
		logger.Error("Failed to load wines from database", err)
		return nil, err
	}

	logger.Debug("Wines loaded from database", map[string]interface{}{
		"count": len(wines),
	})
	return wines, nil
}

func (r *wineRepository) BulkCreate(wines []*model.Wine, batchSize int) error {
	if err := r.db.CreateInBatches(wines, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create wines", err, map[string]interface{}{
			"count": len(wines),
		})
		return err
	}

	logger.Info("Wines bulk created", map[string]interface{}{
		"count": len(wines),
	})
	return nil
}

// ReplaceAll swaps the stored wine collection in one transaction so readers
// of the store never see a half-replaced catalog.
func (r *wineRepository) ReplaceAll(wines []*model.Wine, batchSize int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Wine{}).Error; err != nil {
			logger.Error("Failed to clear wines table", err)
			return err
		}
		if err := tx.CreateInBatches(wines, batchSize).Error; err != nil {
			logger.Error("Failed to insert replacement wines", err, map[string]interface{}{
				"count": len(wines),
			})
			return err
		}
		return nil
	})
}
