package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tubeseo-go/internal/api/handler"
	"tubeseo-go/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	catalogHandler *handler.CatalogHandler,
	seoHandler *handler.SEOHandler,
	distDir string,
) {
	api := r.Group("/api")
	{
		// --- 视频模块 ---
		api.GET("/videos", videoHandler.List)
		api.GET("/videos/:id", videoHandler.Detail)
		api.POST("/videos/:id/comments", commentHandler.Create)

		// --- 分类与博客模块 ---
		api.GET("/categories", catalogHandler.Categories)
		api.GET("/blog", catalogHandler.BlogList)
		api.GET("/blog/:slug", catalogHandler.BlogDetail)
	}

	// --- SEO ---
	r.GET("/robots.txt", seoHandler.Robots)
	r.GET("/sitemap.xml", seoHandler.Sitemap)

	// --- 指标 ---
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 其余路径交给前端单页应用：命中静态文件直接返回，
	// 否则回落到 index.html 由前端路由接管
	r.NoRoute(spaFallback(distDir))
}

func spaFallback(distDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c, "Not found")
			return
		}
		if distDir != "" {
			file := filepath.Join(distDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
			index := filepath.Join(distDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.Status(http.StatusNotFound)
	}
}
