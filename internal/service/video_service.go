package service

import (
	"errors"

	"tubeseo-go/internal/api/dto"
	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound = errors.New("Video not found")
	ErrPostNotFound  = errors.New("Post not found")
)

type VideoService struct {
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
}

func NewVideoService(videoRepo *repository.VideoRepository, commentRepo *repository.CommentRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo, commentRepo: commentRepo}
}

// List 视频列表查询（分类/搜索/排序均可选）
func (s *VideoService) List(filter repository.VideoFilter) ([]model.Video, error) {
	return s.videoRepo.List(filter)
}

// GetDetail 按 youtube_id 获取视频详情及其全部评论。
// 先解析视频再查评论，两次查询；视频不存在与"有视频无评论"是两种结果。
func (s *VideoService) GetDetail(youtubeID string) (*dto.VideoDetail, error) {
	video, err := s.videoRepo.GetByYoutubeID(youtubeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideo(video.ID)
	if err != nil {
		return nil, err
	}

	return &dto.VideoDetail{Video: *video, Comments: comments}, nil
}
