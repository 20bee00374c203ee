package model

// Tag 视频标签模型
//
// 标签与 video_tags 关联表随库迁移建表，但当前没有任何读写接口，
// 属于预留能力（标签筛选上线时再暴露）。
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;comment:标签标识" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;comment:标签名称" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}
