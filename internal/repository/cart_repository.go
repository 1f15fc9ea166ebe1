package repository

import (
	"errors"

	"github.com/littlelemon-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByIDForUser(id, userID uint) (*models.CartItem, error)
	GetByUserAndMenuItem(userID, menuItemID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	DeleteByID(id uint) error
	ClearByUser(userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车行
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("MenuItem").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByIDForUser 按 ID 获取本人购物车行（他人行视为不存在）
func (r *GormCartRepository) GetByIDForUser(id, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("MenuItem").Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByUserAndMenuItem 按用户与菜品获取购物车行
func (r *GormCartRepository) GetByUserAndMenuItem(userID, menuItemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车行
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// Update 更新购物车行
func (r *GormCartRepository) Update(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteByID 删除购物车行
func (r *GormCartRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// ClearByUser 清空用户购物车，返回删除行数
func (r *GormCartRepository) ClearByUser(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
