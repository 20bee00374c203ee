package handler

import (
	"errors"

	"tubeseo-go/internal/api/dto"
	"tubeseo-go/internal/api/response"
	"tubeseo-go/internal/service"
	"tubeseo-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/videos/:id/comments
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "YouTube视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} model.Comment
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /videos/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "user_name and content are required")
		return
	}

	comment, err := h.commentService.Create(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Create comment failed",
			zap.String("youtube_id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to create comment")
		return
	}

	response.Created(c, comment)
}
