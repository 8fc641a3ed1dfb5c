package repository

import (
	"context"

	"ratemyprompt/internal/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	CountPrompts(ctx context.Context, categoryID string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetAll returns categories in seed order (creation order). The homepage
// partitioner iterates this list, so the order must stay stable.
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("created_at asc, name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepository) CountPrompts(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
