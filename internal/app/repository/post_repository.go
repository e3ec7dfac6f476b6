package repository

import (
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/pkg/logger"
	"gorm.io/gorm"
)

type PostRepository interface {
	FindAll() ([]*model.Post, error)
	BulkCreate(posts []*model.Post, batchSize int) error
	ReplaceAll(posts []*model.Post, batchSize int) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindAll() ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		logger.Error("Failed to load posts from database", err)
		return nil, err
	}

	logger.Debug("Posts loaded from database", map[string]interface{}{
		"count": len(posts),
	})
	return posts, nil
}

func (r *postRepository) BulkCreate(posts []*model.Post, batchSize int) error {
	if err := r.db.CreateInBatches(posts, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create posts", err, map[string]interface{}{
			"count": len(posts),
		})
		return err
	}

	logger.Info("Posts bulk created", map[string]interface{}{
		"count": len(posts),
	})
	return nil
}

func (r *postRepository) ReplaceAll(posts []*model.Post, batchSize int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Post{}).Error; err != nil {
			logger.Error("Failed to clear posts table", err)
			return err
		}
		if err := tx.CreateInBatches(posts, batchSize).Error; err != nil {
			logger.Error("Failed to insert replacement posts", err, map[string]interface{}{
				"count": len(posts),
			})
			return err
		}
		return nil
	})
}
