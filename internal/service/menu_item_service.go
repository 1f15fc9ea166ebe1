package service

import (
	"strings"

	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
)

// CreateMenuItemInput 创建菜品输入
type CreateMenuItemInput struct {
	Title      string
	Price      models.Money
	CategoryID uint
	Featured   bool
}

// UpdateMenuItemInput 更新菜品输入（nil 字段表示不修改）
type UpdateMenuItemInput struct {
	Title      *string
	Price      *models.Money
	CategoryID *uint
	Featured   *bool
}

// ListMenuItemsInput 菜品列表查询输入
type ListMenuItemsInput struct {
	Page       int
	PageSize   int
	CategoryID uint
	Search     string
	Featured   *bool
}

// MenuItemService 菜品服务
type MenuItemService struct {
	menuItemRepo repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuItemService 创建菜品服务
func NewMenuItemService(menuItemRepo repository.MenuItemRepository, categoryRepo repository.CategoryRepository) *MenuItemService {
	return &MenuItemService{
		menuItemRepo: menuItemRepo,
		categoryRepo: categoryRepo,
	}
}

// List 菜品列表
func (s *MenuItemService) List(input ListMenuItemsInput) ([]models.MenuItem, int64, error) {
	return s.menuItemRepo.List(repository.MenuItemListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		CategoryID: input.CategoryID,
		Search:     input.Search,
		Featured:   input.Featured,
	})
}

// Get 获取菜品
func (s *MenuItemService) Get(id uint) (*models.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

// Create 创建菜品
func (s *MenuItemService) Create(input CreateMenuItemInput) (*models.MenuItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrMenuItemTitleRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrMenuItemPriceInvalid
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Title:      title,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		Featured:   input.Featured,
	}
	if err := s.menuItemRepo.Create(item); err != nil {
		return nil, err
	}
	return s.Get(item.ID)
}

// Update 更新菜品（支持部分更新）
func (s *MenuItemService) Update(id uint, input UpdateMenuItemInput) (*models.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrMenuItemTitleRequired
		}
		item.Title = title
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, ErrMenuItemPriceInvalid
		}
		item.Price = *input.Price
	}
	if input.CategoryID != nil {
		if err := s.ensureCategory(*input.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *input.CategoryID
		item.Category = nil
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}

	if err := s.menuItemRepo.Update(item); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除菜品
func (s *MenuItemService) Delete(id uint) error {
	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}
	return s.menuItemRepo.Delete(id)
}

func (s *MenuItemService) ensureCategory(categoryID uint) error {
	if categoryID == 0 {
		return ErrMenuItemCategoryInvalid
	}
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrMenuItemCategoryInvalid
	}
	return nil
}
