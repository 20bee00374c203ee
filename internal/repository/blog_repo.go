package repository

import (
	"tubeseo-go/internal/model"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List 获取全部文章，新文章在前
func (r *BlogRepository) List() ([]model.BlogPost, error) {
	posts := make([]model.BlogPost, 0)
	err := r.db.Order("published_at DESC, id DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug 按别名获取文章
func (r *BlogRepository) GetBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListSlugs 枚举全部文章别名（站点地图用）
func (r *BlogRepository) ListSlugs() ([]string, error) {
	var slugs []string
	err := r.db.Model(&model.BlogPost{}).Order("id").Pluck("slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	return slugs, nil
}
