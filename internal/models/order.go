package models

import (
	"time"
)

// Order 订单表
type Order struct {
	ID             uint      `gorm:"primarykey" json:"id"`                              // 主键
	UserID         uint      `gorm:"index;not null" json:"user_id"`                     // 下单用户ID
	DeliveryCrewID *uint     `gorm:"index" json:"delivery_crew_id"`                     // 配送员ID（未指派为空）
	Status         string    `gorm:"index;not null" json:"status"`                      // 订单状态
	Total          Money     `gorm:"type:decimal(6,2);not null;default:0" json:"total"` // 订单总额
	Date           time.Time `gorm:"index;not null" json:"date"`                        // 下单日期
	CreatedAt      time.Time `gorm:"index" json:"-"`                                    // 创建时间
	UpdatedAt      time.Time `gorm:"index" json:"-"`                                    // 更新时间

	User         *User       `gorm:"foreignKey:UserID" json:"-"`                            // 下单用户
	DeliveryCrew *User       `gorm:"foreignKey:DeliveryCrewID" json:"-"`                    // 配送员
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`       // 订单行
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单行（下单时冻结，之后不可变）
type OrderItem struct {
	ID         uint  `gorm:"primarykey" json:"id"`                                            // 主键
	OrderID    uint  `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"order_id"`         // 订单ID
	MenuItemID uint  `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"menuitem_id"`      // 菜品ID
	Quantity   int   `gorm:"not null" json:"quantity"`                                        // 数量
	UnitPrice  Money `gorm:"type:decimal(6,2);not null;default:0" json:"unit_price"`          // 购物车单价快照
	Price      Money `gorm:"type:decimal(6,2);not null;default:0" json:"price"`               // 行金额（下单时菜品现价×数量）

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuitem,omitempty"` // 关联菜品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
