package service

import (
	"os"
	"testing"

	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"
	"tubeseo-go/internal/seed"
	"tubeseo-go/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newSeededDB 内存库 + 初始数据，贴近真实启动后的状态
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Video{},
		&model.Tag{},
		&model.BlogPost{},
		&model.Comment{},
	))

	applied, err := seed.Run(db)
	require.NoError(t, err)
	require.True(t, applied)

	return db
}

func newServices(t *testing.T) (*gorm.DB, *VideoService, *CommentService, *CatalogService, *SitemapService) {
	t.Helper()

	db := newSeededDB(t)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	return db,
		NewVideoService(videoRepo, commentRepo),
		NewCommentService(commentRepo, videoRepo),
		NewCatalogService(categoryRepo, blogRepo),
		NewSitemapService(videoRepo, blogRepo, "")
}
