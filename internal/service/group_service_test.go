package service

import (
	"errors"
	"testing"

	"github.com/littlelemon-next/internal/constants"
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"

	"gorm.io/gorm"
)

func newGroupServiceTest(t *testing.T) (*GroupService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)
	return NewGroupService(repository.NewGroupRepository(db), repository.NewUserRepository(db)), db
}

func TestListMembersMissingGroupIsEmpty(t *testing.T) {
	svc, _ := newGroupServiceTest(t)

	users, err := svc.ListMembers(constants.GroupManager)
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("missing group should list no members, got %d", len(users))
	}
}

func TestAddUserCreatesGroupLazily(t *testing.T) {
	svc, db := newGroupServiceTest(t)
	createUser(t, db, "mario")

	user, err := svc.AddUser(constants.GroupManager, "mario")
	if err != nil {
		t.Fatalf("add user failed: %v", err)
	}
	if user.Username != "mario" {
		t.Fatalf("username want mario got %s", user.Username)
	}

	var group models.Group
	if err := db.Where("name = ?", constants.GroupManager).First(&group).Error; err != nil {
		t.Fatalf("group should be created on first add: %v", err)
	}

	members, err := svc.ListMembers(constants.GroupManager)
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members) != 1 || members[0].Username != "mario" {
		t.Fatalf("members want [mario] got %+v", members)
	}
}

func TestAddUserAlreadyInGroup(t *testing.T) {
	svc, db := newGroupServiceTest(t)
	createUser(t, db, "john", constants.GroupDeliveryCrew)

	user, err := svc.AddUser(constants.GroupDeliveryCrew, "john")
	if !errors.Is(err, ErrUserAlreadyInGroup) {
		t.Fatalf("error want ErrUserAlreadyInGroup got %v", err)
	}
	if user == nil || user.Username != "john" {
		t.Fatalf("user should be returned alongside the error, got %+v", user)
	}
}

func TestAddUserNotFound(t *testing.T) {
	svc, _ := newGroupServiceTest(t)

	if _, err := svc.AddUser(constants.GroupManager, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error want ErrUserNotFound got %v", err)
	}
	if _, err := svc.AddUser(constants.GroupManager, "   "); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("blank username want ErrUserNotFound got %v", err)
	}
}

func TestRemoveUser(t *testing.T) {
	svc, db := newGroupServiceTest(t)
	member := createUser(t, db, "mario", constants.GroupManager)
	outsider := createUser(t, db, "sana")

	if _, err := svc.RemoveUser(constants.GroupManager, outsider.ID); !errors.Is(err, ErrUserNotInGroup) {
		t.Fatalf("error want ErrUserNotInGroup got %v", err)
	}
	if _, err := svc.RemoveUser(constants.GroupDeliveryCrew, member.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("error want ErrGroupNotFound got %v", err)
	}
	if _, err := svc.RemoveUser(constants.GroupManager, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error want ErrUserNotFound got %v", err)
	}

	user, err := svc.RemoveUser(constants.GroupManager, member.ID)
	if err != nil {
		t.Fatalf("remove user failed: %v", err)
	}
	if user.Username != "mario" {
		t.Fatalf("username want mario got %s", user.Username)
	}

	members, err := svc.ListMembers(constants.GroupManager)
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("group should be empty after removal, got %d members", len(members))
	}
}
