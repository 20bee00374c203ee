package repository

import (
	"tubeseo-go/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ListByVideo 获取视频的评论列表，新评论在前。
// 同一时间戳内按ID倒序补齐顺序，保证刚写入的评论排在首位。
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	err := r.db.Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByVideo 统计视频的评论数
func (r *CommentRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
