package service

import (
	"errors"

	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	categoryRepo *repository.CategoryRepository
	blogRepo     *repository.BlogRepository
}

func NewCatalogService(categoryRepo *repository.CategoryRepository, blogRepo *repository.BlogRepository) *CatalogService {
	return &CatalogService{categoryRepo: categoryRepo, blogRepo: blogRepo}
}

// ListCategories 获取全部分类
func (s *CatalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.List()
}

// ListBlogPosts 获取全部文章，新文章在前
func (s *CatalogService) ListBlogPosts() ([]model.BlogPost, error) {
	return s.blogRepo.List()
}

// GetBlogPost 按别名获取文章
func (s *CatalogService) GetBlogPost(slug string) (*model.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}
