package models

import (
	"time"
)

// User 用户表（账号由鉴权协作方维护，这里只读取身份与组信息）
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                 // 主键
	Username     string    `gorm:"uniqueIndex;not null" json:"username"` // 用户名
	Email        string    `gorm:"index" json:"email"`                   // 邮箱
	PasswordHash string    `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	IsSuperuser  bool      `gorm:"not null;default:false" json:"-"`      // 超级管理员标记
	CreatedAt    time.Time `gorm:"index" json:"-"`                       // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"-"`                       // 更新时间

	Groups []Group `gorm:"many2many:user_groups" json:"-"` // 所属用户组
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// InGroup 判断用户是否属于指定组
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// GroupNames 返回用户所属组名列表
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}

// Group 用户组表
type Group struct {
	ID   uint   `gorm:"primarykey" json:"id"`             // 主键
	Name string `gorm:"uniqueIndex;not null" json:"name"` // 组名
}

// TableName 指定表名
func (Group) TableName() string {
	return "groups"
}
