package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createMenuItem(t *testing.T, db *gorm.DB, title, price string) *models.MenuItem {
	t.Helper()
	var category models.Category
	if err := db.Where("title = ?", "Mains").First(&category).Error; err != nil {
		category = models.Category{Title: "Mains"}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	item := &models.MenuItem{Title: title, Price: amount, CategoryID: category.ID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	return item
}

func newCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)
	return NewCartService(repository.NewCartRepository(db), repository.NewMenuItemRepository(db)), db
}

func TestAddCartItem(t *testing.T) {
	svc, db := newCartServiceTest(t)
	menuItem := createMenuItem(t, db, "Greek Salad", "9.99")

	item, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	if item.UnitPrice.String() != "9.99" {
		t.Fatalf("unit price want 9.99 got %s", item.UnitPrice.String())
	}
	if item.Price.String() != "29.97" {
		t.Fatalf("line price want 29.97 got %s", item.Price.String())
	}
	if item.MenuItem == nil || item.MenuItem.Title != "Greek Salad" {
		t.Fatalf("expected menu item preloaded, got %+v", item.MenuItem)
	}
}

func TestAddCartItemDuplicateConflicts(t *testing.T) {
	svc, db := newCartServiceTest(t)
	menuItem := createMenuItem(t, db, "Bruschetta", "7.50")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 2})
	if !errors.Is(err, ErrCartItemExists) {
		t.Fatalf("error want ErrCartItemExists got %v", err)
	}
}

func TestAddCartItemValidation(t *testing.T) {
	svc, db := newCartServiceTest(t)
	menuItem := createMenuItem(t, db, "Baklava", "5.99")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 0}); !errors.Is(err, ErrCartQuantityInvalid) {
		t.Fatalf("error want ErrCartQuantityInvalid got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: 9999, Quantity: 1}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("error want ErrMenuItemNotFound got %v", err)
	}
}

func TestUpdateCartItemRecalculatesPrice(t *testing.T) {
	svc, db := newCartServiceTest(t)
	menuItem := createMenuItem(t, db, "Lemon Dessert", "6.25")

	item, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	// 菜品改价后更新数量，单价与行金额按现价重算
	menuItem.Price = models.NewMoneyFromDecimal(decimal.RequireFromString("8.00"))
	if err := db.Save(menuItem).Error; err != nil {
		t.Fatalf("update menu price failed: %v", err)
	}

	updated, err := svc.UpdateItem(UpdateCartItemInput{UserID: 1, ItemID: item.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("update cart item failed: %v", err)
	}
	if updated.UnitPrice.String() != "8.00" {
		t.Fatalf("unit price want 8.00 got %s", updated.UnitPrice.String())
	}
	if updated.Price.String() != "16.00" {
		t.Fatalf("line price want 16.00 got %s", updated.Price.String())
	}
}

func TestCartItemScopedToUser(t *testing.T) {
	svc, db := newCartServiceTest(t)
	menuItem := createMenuItem(t, db, "Grilled Salmon", "18.75")

	item, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	if _, err := svc.GetItem(2, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign row get want ErrCartItemNotFound got %v", err)
	}
	if err := svc.RemoveItem(2, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign row remove want ErrCartItemNotFound got %v", err)
	}
	if _, err := svc.GetItem(1, item.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestClearCart(t *testing.T) {
	svc, db := newCartServiceTest(t)
	first := createMenuItem(t, db, "Pasta Primavera", "13.25")
	second := createMenuItem(t, db, "Fresh Lemonade", "3.50")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: first.ID, Quantity: 1}); err != nil {
		t.Fatalf("add first item failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, MenuItemID: second.ID, Quantity: 2}); err != nil {
		t.Fatalf("add second item failed: %v", err)
	}

	deleted, err := svc.Clear(1)
	if err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted want 2 got %d", deleted)
	}

	if _, err := svc.Clear(1); !errors.Is(err, ErrCartAlreadyEmpty) {
		t.Fatalf("second clear want ErrCartAlreadyEmpty got %v", err)
	}
}
