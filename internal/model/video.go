package model

import "time"

// Video 视频模型
type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	YoutubeID   string    `gorm:"size:20;uniqueIndex;comment:YouTube视频ID" json:"youtube_id"`
	Title       string    `gorm:"size:200;comment:视频标题" json:"title"`
	Description string    `gorm:"type:text;comment:视频描述" json:"description"`
	Thumbnail   string    `gorm:"size:500;comment:封面图地址" json:"thumbnail"`
	CategoryID  int64     `gorm:"not null;index:idx_videos_category_id;comment:所属分类ID" json:"category_id"`
	Views       int64     `gorm:"default:0;comment:播放量" json:"views"`
	Likes       int64     `gorm:"default:0;comment:点赞数" json:"likes"`
	PublishedAt time.Time `gorm:"autoCreateTime;index:idx_videos_published_at;comment:发布时间" json:"published_at"`

	// CategoryName 由列表/详情查询的 JOIN 填充，只读，不落库
	CategoryName string `gorm:"->;-:migration" json:"category_name"`

	// 关联关系
	Category Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"-"`
	Tags     []Tag     `gorm:"many2many:video_tags" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}
