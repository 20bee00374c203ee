package seed

import (
	"fmt"

	"tubeseo-go/internal/model"
	"tubeseo-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run 写入初始数据。以 categories 表是否为空作为幂等开关：
// 表非空时不做任何修改。返回值标记本次是否实际写入，方便启动日志和测试断言。
func Run(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		logger.Info("Seed skipped, store already populated", zap.Int64("categories", count))
		return false, nil
	}

	categories := []model.Category{
		{Name: "Technology", Slug: "technology"},
		{Name: "Education", Slug: "education"},
		{Name: "Entertainment", Slug: "entertainment"},
		{Name: "Lifestyle", Slug: "lifestyle"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return false, fmt.Errorf("seed categories: %w", err)
	}

	// Create 回填自增ID，按别名取用，避免依赖序列起点
	bySlug := make(map[string]int64, len(categories))
	for _, c := range categories {
		bySlug[c.Slug] = c.ID
	}

	videos := []model.Video{
		{
			YoutubeID:   "dQw4w9WgXcQ",
			Title:       "Never Gonna Give You Up",
			Description: "The classic Rick Astley hit.",
			Thumbnail:   "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			CategoryID:  bySlug["entertainment"],
			Views:       1000000,
			Likes:       50000,
		},
		{
			YoutubeID:   "jNQXAC9IVRw",
			Title:       "Me at the zoo",
			Description: "The first video on YouTube.",
			Thumbnail:   "https://img.youtube.com/vi/jNQXAC9IVRw/maxresdefault.jpg",
			CategoryID:  bySlug["lifestyle"],
			Views:       2000000,
			Likes:       100000,
		},
		{
			YoutubeID:   "9bZkp7q19f0",
			Title:       "PSY - GANGNAM STYLE",
			Description: "Global phenomenon.",
			Thumbnail:   "https://img.youtube.com/vi/9bZkp7q19f0/maxresdefault.jpg",
			CategoryID:  bySlug["entertainment"],
			Views:       4000000,
			Likes:       200000,
		},
		{
			YoutubeID:   "M7lc1UVf-VE",
			Title:       "YouTube iframe API",
			Description: "Developer documentation.",
			Thumbnail:   "https://img.youtube.com/vi/M7lc1UVf-VE/maxresdefault.jpg",
			CategoryID:  bySlug["technology"],
			Views:       50000,
			Likes:       1000,
		},
	}
	if err := db.Create(&videos).Error; err != nil {
		return false, fmt.Errorf("seed videos: %w", err)
	}

	posts := []model.BlogPost{
		{
			Title:   "How to Optimize Your YouTube SEO",
			Slug:    "youtube-seo-optimization",
			Content: "Full guide on SEO...",
			Excerpt: "Learn the best practices for video discoverability.",
			Image:   "https://picsum.photos/seed/seo/800/400",
		},
		{
			Title:   "The Future of Video Content",
			Slug:    "future-of-video",
			Content: "Video is king...",
			Excerpt: "Trends to watch in 2026.",
			Image:   "https://picsum.photos/seed/video/800/400",
		},
	}
	if err := db.Create(&posts).Error; err != nil {
		return false, fmt.Errorf("seed blog posts: %w", err)
	}

	logger.Info("Seed data applied",
		zap.Int("categories", len(categories)),
		zap.Int("videos", len(videos)),
		zap.Int("blog_posts", len(posts)),
	)

	return true, nil
}
