package handler

import (
	"net/http"

	"tubeseo-go/internal/service"
	"tubeseo-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SEOHandler struct {
	sitemapService *service.SitemapService
}

func NewSEOHandler(sitemapService *service.SitemapService) *SEOHandler {
	return &SEOHandler{sitemapService: sitemapService}
}

// Robots GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, service.RobotsTxt)
}

// Sitemap GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	xml, err := h.sitemapService.BuildSitemap()
	if err != nil {
		logger.Error("Build sitemap failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to build sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
