package service

import (
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
)

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID     uint
	MenuItemID uint
	Quantity   int
}

// UpdateCartItemInput 购物车行更新输入（MenuItemID 为 nil 时保持原菜品）
type UpdateCartItemInput struct {
	UserID     uint
	ItemID     uint
	Quantity   int
	MenuItemID *uint
}

// CartService 购物车服务
type CartService struct {
	cartRepo     repository.CartRepository
	menuItemRepo repository.MenuItemRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, menuItemRepo repository.MenuItemRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		menuItemRepo: menuItemRepo,
	}
}

// ListByUser 获取用户购物车
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.cartRepo.ListByUser(userID)
}

// GetItem 获取本人购物车行
func (s *CartService) GetItem(userID, itemID uint) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByIDForUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// AddItem 加购：同一菜品重复加购视为冲突，不做数量合并
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.UserID == 0 || input.MenuItemID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity < 1 {
		return nil, ErrCartQuantityInvalid
	}
	menuItem, err := s.menuItemRepo.GetByID(input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, ErrMenuItemNotFound
	}

	existing, err := s.cartRepo.GetByUserAndMenuItem(input.UserID, input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCartItemExists
	}

	item := &models.CartItem{
		UserID:     input.UserID,
		MenuItemID: input.MenuItemID,
		Quantity:   input.Quantity,
		UnitPrice:  menuItem.Price,
		Price:      menuItem.Price.Mul(input.Quantity),
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return s.GetItem(input.UserID, item.ID)
}

// UpdateItem 更新本人购物车行，单价与行金额按当前菜品价格重算
func (s *CartService) UpdateItem(input UpdateCartItemInput) (*models.CartItem, error) {
	if input.Quantity < 1 {
		return nil, ErrCartQuantityInvalid
	}
	item, err := s.GetItem(input.UserID, input.ItemID)
	if err != nil {
		return nil, err
	}

	menuItemID := item.MenuItemID
	if input.MenuItemID != nil {
		menuItemID = *input.MenuItemID
	}
	menuItem, err := s.menuItemRepo.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, ErrMenuItemNotFound
	}
	if menuItemID != item.MenuItemID {
		conflict, err := s.cartRepo.GetByUserAndMenuItem(input.UserID, menuItemID)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, ErrCartItemExists
		}
	}

	item.MenuItemID = menuItemID
	item.MenuItem = nil
	item.Quantity = input.Quantity
	item.UnitPrice = menuItem.Price
	item.Price = menuItem.Price.Mul(input.Quantity)
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return s.GetItem(input.UserID, item.ID)
}

// RemoveItem 删除本人购物车行
func (s *CartService) RemoveItem(userID, itemID uint) error {
	item, err := s.GetItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteByID(item.ID)
}

// Clear 清空购物车，返回删除行数；购物车已空时报错
func (s *CartService) Clear(userID uint) (int64, error) {
	if userID == 0 {
		return 0, ErrInvalidInput
	}
	deleted, err := s.cartRepo.ClearByUser(userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrCartAlreadyEmpty
	}
	return deleted, nil
}
