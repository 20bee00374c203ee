package repository

import (
	"tubeseo-go/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List 获取全部分类，按入库顺序返回
func (r *CategoryRepository) List() ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
