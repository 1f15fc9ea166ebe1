package repository

// MenuItemListFilter 查询菜品列表的过滤条件
type MenuItemListFilter struct {
	Page       int
	PageSize   int
	CategoryID uint
	Search     string
	Featured   *bool
}

// OrderListFilter 查询订单列表的过滤条件
// UserID / DeliveryCrewID 为可见范围约束，零值表示不限制
type OrderListFilter struct {
	Page           int
	PageSize       int
	UserID         uint
	DeliveryCrewID uint
	Status         string
}
