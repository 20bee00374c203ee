package main

import (
	"fmt"
	"net/http"
	"time"

	"tubeseo-go/internal/api/handler"
	"tubeseo-go/internal/api/middleware"
	"tubeseo-go/internal/api/router"
	"tubeseo-go/internal/config"
	"tubeseo-go/internal/infra/database"
	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"
	"tubeseo-go/internal/seed"
	"tubeseo-go/internal/service"
	"tubeseo-go/pkg/logger"

	_ "tubeseo-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title TubeSEO API
// @version 1.0
// @description 视频目录站点 API 服务

// @BasePath /api

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.Category{},
		&model.Video{},
		&model.Tag{},
		&model.BlogPost{},
		&model.Comment{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 写入初始数据（categories 表非空时跳过）
	db := database.Get()
	if applied, err := seed.Run(db); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	} else if applied {
		logger.Info("Fresh store bootstrapped with seed data")
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.Use(middleware.Metrics())

	// 初始化依赖（Repository -> Service -> Handler）
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	videoService := service.NewVideoService(videoRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	catalogService := service.NewCatalogService(categoryRepo, blogRepo)
	sitemapService := service.NewSitemapService(videoRepo, blogRepo, cfg.App.SiteURL)

	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	seoHandler := handler.NewSEOHandler(sitemapService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, videoHandler, commentHandler, catalogHandler, seoHandler, cfg.App.DistDir)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)

	// 启动HTTP服务器
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}
