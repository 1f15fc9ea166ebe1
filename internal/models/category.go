package models

// Category 菜品分类表
type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`              // 主键
	Title string `gorm:"uniqueIndex;not null" json:"title"` // 分类名称
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
