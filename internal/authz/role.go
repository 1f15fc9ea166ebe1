package authz

import (
	"github.com/littlelemon-next/internal/constants"
)

// Role 请求角色（每次请求根据用户身份推导一次）
type Role string

const (
	RoleAnonymous    Role = "anonymous"
	RoleCustomer     Role = "customer"
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleStaff        Role = "staff"
	RoleSuperuser    Role = "superuser"
)

// DeriveRole 根据超管标记与组成员关系推导角色
// 优先级：超管 > Manager 组 > DeliveryCrew 组；有其他组视为员工，无组视为顾客
func DeriveRole(isSuperuser bool, groups []string) Role {
	if isSuperuser {
		return RoleSuperuser
	}
	var manager, crew, other bool
	for _, name := range groups {
		switch name {
		case constants.GroupManager:
			manager = true
		case constants.GroupDeliveryCrew:
			crew = true
		default:
			other = true
		}
	}
	switch {
	case manager:
		return RoleManager
	case crew:
		return RoleDeliveryCrew
	case other:
		return RoleStaff
	}
	return RoleCustomer
}

// Subject 返回角色对应的 casbin 主体
func (r Role) Subject() string {
	return rolePrefix + string(r)
}

// ThrottleGroup 返回角色对应的限流分组
func (r Role) ThrottleGroup() string {
	switch r {
	case RoleSuperuser:
		return constants.ThrottleGroupSuperuser
	case RoleManager:
		return constants.ThrottleGroupManager
	case RoleDeliveryCrew:
		return constants.ThrottleGroupDeliveryCrew
	default:
		return constants.ThrottleGroupDefault
	}
}

// IsManagerial 是否具备管理权限（经理或超管）
func (r Role) IsManagerial() bool {
	return r == RoleManager || r == RoleSuperuser
}

// IsCustomer 是否为普通顾客
func (r Role) IsCustomer() bool {
	return r == RoleCustomer
}
