package repository

import (
	"strings"

	"tubeseo-go/internal/model"

	"gorm.io/gorm"
)

// 排序关键字，闭集：其余取值一律走默认排序
const (
	SortPopular = "popular"
	SortNewest  = "newest"
)

// VideoFilter 视频列表筛选条件，字段均可选，零值跳过对应谓词。
// 各谓词相互独立，按 AND 组合，新增筛选维度只需追加一个分支。
type VideoFilter struct {
	Category string // 分类别名（slug）
	Search   string // 标题/描述子串，大小写不敏感
	Sort     string // popular / newest / 其他
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// withCategoryName 基础查询：JOIN 分类表补出只读的 category_name 列
func (r *VideoRepository) withCategoryName() *gorm.DB {
	return r.db.Model(&model.Video{}).
		Select("videos.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = videos.category_id")
}

// List 按筛选条件查询视频列表，条件全空时返回全部视频。
// 筛选值只作为绑定参数出现，查询文本中可变的只有闭集内的排序关键字。
func (r *VideoRepository) List(f VideoFilter) ([]model.Video, error) {
	query := r.withCategoryName()

	if f.Category != "" {
		query = query.Where("categories.slug = ?", f.Category)
	}
	if f.Search != "" {
		// LOWER 两侧小写比较，在 sqlite 与 postgres 上行为一致
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("(LOWER(videos.title) LIKE ? OR LOWER(videos.description) LIKE ?)", pattern, pattern)
	}

	switch f.Sort {
	case SortPopular:
		query = query.Order("videos.views DESC")
	case SortNewest:
		query = query.Order("videos.published_at DESC")
	default:
		// 自增ID倒序 = 最近入库在前，不依赖时间戳精度
		query = query.Order("videos.id DESC")
	}

	// 预分配空切片：无匹配时序列化为 [] 而不是 null
	videos := make([]model.Video, 0)
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// GetByYoutubeID 按 youtube_id 获取视频（含 category_name）
func (r *VideoRepository) GetByYoutubeID(youtubeID string) (*model.Video, error) {
	var video model.Video
	err := r.withCategoryName().Where("videos.youtube_id = ?", youtubeID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetIDByYoutubeID 按 youtube_id 解析内部ID（评论写入前的存在性检查）
func (r *VideoRepository) GetIDByYoutubeID(youtubeID string) (int64, error) {
	var video model.Video
	err := r.db.Select("id").Where("youtube_id = ?", youtubeID).First(&video).Error
	if err != nil {
		return 0, err
	}
	return video.ID, nil
}

// ListYoutubeIDs 枚举全部视频的 youtube_id（站点地图用）
func (r *VideoRepository) ListYoutubeIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Video{}).Order("id").Pluck("youtube_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
