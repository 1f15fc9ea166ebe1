package authz

import "fmt"

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     Role
	Inherits []Role
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
// 目录读取走公开路由组，不经过授权判定，所以这里只列登录态资源
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: RoleCustomer,
			Policies: []Policy{
				{Object: "/cart/menu-items", Action: "*"},
				{Object: "/cart/menu-items/:id", Action: "*"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders", Action: "POST"},
				{Object: "/orders/:id", Action: "GET"},
			},
		},
		{
			Role: RoleStaff,
			Policies: []Policy{
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/:id", Action: "PATCH"},
			},
		},
		{
			Role: RoleDeliveryCrew,
			Policies: []Policy{
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/:id", Action: "PATCH"},
			},
		},
		{
			Role: RoleManager,
			Policies: []Policy{
				{Object: "/categories", Action: "POST"},
				{Object: "/categories/:id", Action: "PUT"},
				{Object: "/categories/:id", Action: "PATCH"},
				{Object: "/categories/:id", Action: "DELETE"},
				{Object: "/menu-items", Action: "POST"},
				{Object: "/menu-items/:id", Action: "PUT"},
				{Object: "/menu-items/:id", Action: "PATCH"},
				{Object: "/menu-items/:id", Action: "DELETE"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/:id", Action: "PUT"},
				{Object: "/orders/:id", Action: "PATCH"},
				{Object: "/orders/:id", Action: "DELETE"},
				{Object: "/groups/manager/users", Action: "GET"},
				{Object: "/groups/manager/users", Action: "POST"},
				{Object: "/groups/manager/users/:user_id", Action: "DELETE"},
				{Object: "/groups/delivery-crew/users", Action: "GET"},
				{Object: "/groups/delivery-crew/users", Action: "POST"},
				{Object: "/groups/delivery-crew/users/:user_id", Action: "DELETE"},
			},
		},
		{
			Role:     RoleSuperuser,
			Inherits: []Role{RoleManager},
		},
	}
}

// BootstrapBuiltinRoles 幂等写入预置角色与策略矩阵
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role := seed.Role.Subject()

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor); err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
		}

		for _, parent := range seed.Inherits {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parent.Subject()); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}
