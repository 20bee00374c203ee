package seed

import (
	"os"
	"testing"

	"tubeseo-go/internal/model"
	"tubeseo-go/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func TestRunOnEmptyStore(t *testing.T) {
	db := newTestDB(t)

	applied, err := Run(db)
	require.NoError(t, err)
	assert.True(t, applied)

	var categories, videos, posts int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Video{}).Count(&videos).Error)
	require.NoError(t, db.Model(&model.BlogPost{}).Count(&posts).Error)
	assert.EqualValues(t, 4, categories)
	assert.EqualValues(t, 4, videos)
	assert.EqualValues(t, 2, posts)

	// 种子视频挂在正确的分类下
	var gangnam model.Video
	require.NoError(t, db.Where("youtube_id = ?", "9bZkp7q19f0").First(&gangnam).Error)
	var cat model.Category
	require.NoError(t, db.First(&cat, gangnam.CategoryID).Error)
	assert.Equal(t, "entertainment", cat.Slug)
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	applied, err := Run(db)
	require.NoError(t, err)
	require.True(t, applied)

	// 第二次跑不再写入
	applied, err = Run(db)
	require.NoError(t, err)
	assert.False(t, applied)

	var videos int64
	require.NoError(t, db.Model(&model.Video{}).Count(&videos).Error)
	assert.EqualValues(t, 4, videos)
}

func TestRunSkipsNonEmptyStore(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Category{Name: "Custom", Slug: "custom"}).Error)

	applied, err := Run(db)
	require.NoError(t, err)
	assert.False(t, applied)

	// 已有数据原样保留，种子数据不混入
	var categories int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	assert.EqualValues(t, 1, categories)
}
