package model

// Category 视频分类模型
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;comment:分类标识" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;comment:分类名称" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;comment:URL别名" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}
