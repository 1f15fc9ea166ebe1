package repository

import (
	"errors"

	"github.com/littlelemon-next/internal/models"

	"gorm.io/gorm"
)

// GroupRepository 用户组数据访问接口
type GroupRepository interface {
	GetByName(name string) (*models.Group, error)
	GetOrCreate(name string) (*models.Group, error)
	ListMembers(groupID uint) ([]models.User, error)
	HasMember(groupID, userID uint) (bool, error)
	AddMember(group *models.Group, user *models.User) error
	RemoveMember(group *models.Group, user *models.User) error
}

// GormGroupRepository GORM 实现
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository 创建用户组仓库
func NewGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// GetByName 根据组名获取组
func (r *GormGroupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("name = ?", name).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// GetOrCreate 获取组，不存在则创建
func (r *GormGroupRepository) GetOrCreate(name string) (*models.Group, error) {
	group, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}
	created := models.Group{Name: name}
	if err := r.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// ListMembers 按 ID 升序列出组成员
func (r *GormGroupRepository) ListMembers(groupID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", groupID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// HasMember 判断用户是否在组内
func (r *GormGroupRepository) HasMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("user_groups").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddMember 将用户加入组
func (r *GormGroupRepository) AddMember(group *models.Group, user *models.User) error {
	return r.db.Model(user).Association("Groups").Append(group)
}

// RemoveMember 将用户移出组
func (r *GormGroupRepository) RemoveMember(group *models.Group, user *models.User) error {
	return r.db.Model(user).Association("Groups").Delete(group)
}
