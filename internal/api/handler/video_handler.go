package handler

import (
	"errors"

	"tubeseo-go/internal/api/response"
	"tubeseo-go/internal/repository"
	"tubeseo-go/internal/service"
	"tubeseo-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List 视频列表
// @Summary 视频列表
// @Description 按分类/关键词筛选视频，支持排序
// @Tags 视频
// @Produce json
// @Param category query string false "分类别名"
// @Param search query string false "标题或描述关键词"
// @Param sort query string false "排序方式" Enums(popular, newest)
// @Success 200 {array} model.Video
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	filter := repository.VideoFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	videos, err := h.videoService.List(filter)
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "Failed to list videos")
		return
	}

	response.OK(c, videos)
}

// Detail 视频详情
// @Summary 视频详情
// @Description 按 youtube_id 获取视频及其全部评论
// @Tags 视频
// @Produce json
// @Param id path string true "YouTube视频ID"
// @Success 200 {object} dto.VideoDetail
// @Failure 404 {object} response.ErrorBody
// @Router /videos/{id} [get]
func (h *VideoHandler) Detail(c *gin.Context) {
	detail, err := h.videoService.GetDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get video detail failed",
			zap.String("youtube_id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to get video")
		return
	}

	response.OK(c, detail)
}
