package models

import (
	"time"
)

// CartItem 购物车行（硬删除，复合唯一索引保证同一菜品只占一行）
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                           // 主键
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_menuitem" json:"user_id"`     // 用户ID
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_user_menuitem" json:"menuitem_id"` // 菜品ID
	Quantity   int       `gorm:"not null" json:"quantity"`                                       // 数量
	UnitPrice  Money     `gorm:"type:decimal(6,2);not null;default:0" json:"unit_price"`         // 加购时单价快照
	Price      Money     `gorm:"type:decimal(6,2);not null;default:0" json:"price"`              // 行金额（单价×数量）
	CreatedAt  time.Time `gorm:"index" json:"-"`                                                 // 创建时间
	UpdatedAt  time.Time `gorm:"index" json:"-"`                                                 // 更新时间

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuitem,omitempty"` // 关联菜品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
