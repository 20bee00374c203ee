package model

import "time"

// Comment 评论模型
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	VideoID   int64     `gorm:"not null;index:idx_comments_video_id;comment:被评论视频ID" json:"video_id"`
	UserName  string    `gorm:"size:100;comment:评论人昵称" json:"user_name"`
	Content   string    `gorm:"type:text;comment:评论内容" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at;comment:评论时间" json:"created_at"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
