package dto

import "tubeseo-go/internal/model"

// VideoDetail 视频详情响应：视频字段平铺，评论嵌套（新评论在前）
type VideoDetail struct {
	model.Video
	Comments []model.Comment `json:"comments"`
}
