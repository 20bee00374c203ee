package service

import (
	"errors"

	"tubeseo-go/internal/api/dto"
	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

// Create 发表评论。先按 youtube_id 解析视频，不存在直接失败，
// 不会留下悬空评论；成功时返回完整评论（含生成的ID与时间戳）。
func (s *CommentService) Create(youtubeID string, req *dto.CommentCreateRequest) (*model.Comment, error) {
	videoID, err := s.videoRepo.GetIDByYoutubeID(youtubeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID:  videoID,
		UserName: req.UserName,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}
