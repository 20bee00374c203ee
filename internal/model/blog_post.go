package model

import "time"

// BlogPost 博客文章模型（与视频相互独立）
type BlogPost struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:文章标识" json:"id"`
	Title       string    `gorm:"size:200;comment:文章标题" json:"title"`
	Slug        string    `gorm:"size:200;uniqueIndex;comment:URL别名" json:"slug"`
	Content     string    `gorm:"type:text;comment:正文" json:"content"`
	Excerpt     string    `gorm:"size:500;comment:摘要" json:"excerpt"`
	Image       string    `gorm:"size:500;comment:配图地址" json:"image"`
	PublishedAt time.Time `gorm:"autoCreateTime;index:idx_blog_posts_published_at;comment:发布时间" json:"published_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
