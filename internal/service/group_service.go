package service

import (
	"strings"

	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
)

// GroupService 用户组成员管理服务
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService 创建用户组服务
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// ListMembers 列出组成员（组不存在时返回空列表）
func (s *GroupService) ListMembers(groupName string) ([]models.User, error) {
	group, err := s.groupRepo.GetByName(groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return []models.User{}, nil
	}
	return s.groupRepo.ListMembers(group.ID)
}

// AddUser 按用户名将用户加入组，组不存在则创建
func (s *GroupService) AddUser(groupName, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	group, err := s.groupRepo.GetOrCreate(groupName)
	if err != nil {
		return nil, err
	}
	member, err := s.groupRepo.HasMember(group.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if member {
		return user, ErrUserAlreadyInGroup
	}
	if err := s.groupRepo.AddMember(group, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveUser 按用户 ID 将用户移出组
func (s *GroupService) RemoveUser(groupName string, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	group, err := s.groupRepo.GetByName(groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	member, err := s.groupRepo.HasMember(group.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if !member {
		return user, ErrUserNotInGroup
	}
	if err := s.groupRepo.RemoveMember(group, user); err != nil {
		return nil, err
	}
	return user, nil
}
