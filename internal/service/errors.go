package service

import "errors"

// 业务错误定义：handler 层统一映射为 HTTP 状态码与 detail 消息
var (
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCategoryTitleRequired   = errors.New("category title required")
	ErrCategoryTitleTaken      = errors.New("category title taken")
	ErrCategoryInUse           = errors.New("category has menu items")
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrMenuItemTitleRequired   = errors.New("menu item title required")
	ErrMenuItemPriceInvalid    = errors.New("menu item price invalid")
	ErrMenuItemCategoryInvalid = errors.New("menu item category invalid")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrCartItemExists          = errors.New("menu item already in cart")
	ErrCartQuantityInvalid     = errors.New("cart quantity invalid")
	ErrCartEmpty               = errors.New("cart is empty")
	ErrCartAlreadyEmpty        = errors.New("cart is already empty")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderStatusInvalid      = errors.New("order status invalid")
	ErrDeliveryCrewInvalid     = errors.New("delivery crew user invalid")
	ErrDeliveryCrewForbidden   = errors.New("delivery crew assignment forbidden")
	ErrUserNotFound            = errors.New("user not found")
	ErrGroupNotFound           = errors.New("group not found")
	ErrUserAlreadyInGroup      = errors.New("user already in group")
	ErrUserNotInGroup          = errors.New("user not in group")
	ErrInvalidInput            = errors.New("invalid input")
)
