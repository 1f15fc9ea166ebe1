package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestDeriveRole(t *testing.T) {
	cases := []struct {
		name        string
		isSuperuser bool
		groups      []string
		want        Role
	}{
		{name: "superuser", isSuperuser: true, groups: []string{"Manager"}, want: RoleSuperuser},
		{name: "manager", groups: []string{"Manager"}, want: RoleManager},
		{name: "delivery_crew", groups: []string{"DeliveryCrew"}, want: RoleDeliveryCrew},
		{name: "manager_wins_over_crew", groups: []string{"Manager", "DeliveryCrew"}, want: RoleManager},
		{name: "manager_wins_regardless_of_order", groups: []string{"DeliveryCrew", "Manager"}, want: RoleManager},
		{name: "manager_wins_over_other_groups", groups: []string{"Kitchen", "DeliveryCrew", "Manager"}, want: RoleManager},
		{name: "other_group_is_staff", groups: []string{"Kitchen"}, want: RoleStaff},
		{name: "no_groups_is_customer", groups: nil, want: RoleCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveRole(tc.isSuperuser, tc.groups)
			if got != tc.want {
				t.Fatalf("role want %s got %s", tc.want, got)
			}
		})
	}
}

func TestEnforceRoleMatrix(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	cases := []struct {
		name  string
		role  Role
		obj   string
		act   string
		allow bool
	}{
		{name: "customer_cart", role: RoleCustomer, obj: "/api/cart/menu-items", act: "GET", allow: true},
		{name: "customer_place_order", role: RoleCustomer, obj: "/api/orders", act: "POST", allow: true},
		{name: "customer_own_order", role: RoleCustomer, obj: "/api/orders/12", act: "GET", allow: true},
		{name: "customer_cannot_write_menu", role: RoleCustomer, obj: "/api/menu-items", act: "POST", allow: false},
		{name: "customer_cannot_manage_groups", role: RoleCustomer, obj: "/api/groups/manager/users", act: "GET", allow: false},
		{name: "crew_list_orders", role: RoleDeliveryCrew, obj: "/api/orders", act: "GET", allow: true},
		{name: "crew_patch_order", role: RoleDeliveryCrew, obj: "/api/orders/5", act: "PATCH", allow: true},
		{name: "crew_cannot_delete_order", role: RoleDeliveryCrew, obj: "/api/orders/5", act: "DELETE", allow: false},
		{name: "crew_cannot_place_order", role: RoleDeliveryCrew, obj: "/api/orders", act: "POST", allow: false},
		{name: "staff_patch_order", role: RoleStaff, obj: "/api/orders/5", act: "PATCH", allow: true},
		{name: "staff_cannot_touch_cart", role: RoleStaff, obj: "/api/cart/menu-items", act: "GET", allow: false},
		{name: "manager_create_menu_item", role: RoleManager, obj: "/api/menu-items", act: "POST", allow: true},
		{name: "manager_delete_order", role: RoleManager, obj: "/api/orders/5", act: "DELETE", allow: true},
		{name: "manager_group_add", role: RoleManager, obj: "/api/groups/delivery-crew/users", act: "POST", allow: true},
		{name: "manager_group_remove", role: RoleManager, obj: "/api/groups/manager/users/3", act: "DELETE", allow: true},
		{name: "manager_cannot_place_order", role: RoleManager, obj: "/api/orders", act: "POST", allow: false},
		{name: "superuser_inherits_manager", role: RoleSuperuser, obj: "/api/menu-items/7", act: "DELETE", allow: true},
		{name: "superuser_group_list", role: RoleSuperuser, obj: "/api/groups/manager/users", act: "GET", allow: true},
		{name: "anonymous_denied", role: RoleAnonymous, obj: "/api/orders", act: "GET", allow: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allow, err := svc.Enforce(tc.role, tc.obj, tc.act)
			if err != nil {
				t.Fatalf("enforce failed: %v", err)
			}
			if allow != tc.allow {
				t.Fatalf("allow want %v got %v", tc.allow, allow)
			}
		})
	}
}

func TestBootstrapBuiltinRolesIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	allow, err := svc.Enforce(RoleManager, "/api/orders", "GET")
	if err != nil {
		t.Fatalf("enforce after rebootstrap failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected manager order access after rebootstrap")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/orders/:id", want: "/orders/:id"},
		{in: "/orders/:id", want: "/orders/:id"},
		{in: "menu-items", want: "/menu-items"},
		{in: "/api", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}
