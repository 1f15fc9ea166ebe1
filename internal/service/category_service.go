package service

import (
	"strings"

	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Get 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(title string) (*models.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrCategoryTitleRequired
	}
	count, err := s.categoryRepo.CountByTitle(title, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryTitleTaken
	}
	category := &models.Category{Title: title}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类标题
func (s *CategoryService) Update(id uint, title string) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrCategoryTitleRequired
	}
	count, err := s.categoryRepo.CountByTitle(title, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryTitleTaken
	}
	category.Title = title
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类（有关联菜品时拒绝，避免悬空引用）
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	count, err := s.categoryRepo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
