package handler

import (
	"errors"

	"tubeseo-go/internal/api/response"
	"tubeseo-go/internal/service"
	"tubeseo-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Categories GET /api/categories
// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		logger.Error("List categories failed", zap.Error(err))
		response.InternalError(c, "Failed to list categories")
		return
	}
	response.OK(c, categories)
}

// BlogList GET /api/blog
// @Summary 文章列表
// @Tags 博客
// @Produce json
// @Success 200 {array} model.BlogPost
// @Router /blog [get]
func (h *CatalogHandler) BlogList(c *gin.Context) {
	posts, err := h.catalogService.ListBlogPosts()
	if err != nil {
		logger.Error("List blog posts failed", zap.Error(err))
		response.InternalError(c, "Failed to list blog posts")
		return
	}
	response.OK(c, posts)
}

// BlogDetail GET /api/blog/:slug
// @Summary 文章详情
// @Tags 博客
// @Produce json
// @Param slug path string true "文章别名"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} response.ErrorBody
// @Router /blog/{slug} [get]
func (h *CatalogHandler) BlogDetail(c *gin.Context) {
	post, err := h.catalogService.GetBlogPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get blog post failed",
			zap.String("slug", c.Param("slug")), zap.Error(err))
		response.InternalError(c, "Failed to get blog post")
		return
	}
	response.OK(c, post)
}
