package service

import (
	"errors"
	"testing"

	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"

	"gorm.io/gorm"
)

func newCatalogServiceTest(t *testing.T) (*MenuItemService, *CategoryService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemSvc := NewMenuItemService(repository.NewMenuItemRepository(db), categoryRepo)
	categorySvc := NewCategoryService(categoryRepo)
	return menuItemSvc, categorySvc, db
}

func TestCreateMenuItemValidation(t *testing.T) {
	menuItemSvc, categorySvc, _ := newCatalogServiceTest(t)
	category, err := categorySvc.Create("Mains")
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	price, _ := models.NewMoneyFromString("16.50")
	if _, err := menuItemSvc.Create(CreateMenuItemInput{Title: "  ", Price: price, CategoryID: category.ID}); !errors.Is(err, ErrMenuItemTitleRequired) {
		t.Fatalf("blank title want ErrMenuItemTitleRequired got %v", err)
	}
	negative, _ := models.NewMoneyFromString("-1.00")
	if _, err := menuItemSvc.Create(CreateMenuItemInput{Title: "Chicken", Price: negative, CategoryID: category.ID}); !errors.Is(err, ErrMenuItemPriceInvalid) {
		t.Fatalf("negative price want ErrMenuItemPriceInvalid got %v", err)
	}
	if _, err := menuItemSvc.Create(CreateMenuItemInput{Title: "Chicken", Price: price, CategoryID: 9999}); !errors.Is(err, ErrMenuItemCategoryInvalid) {
		t.Fatalf("missing category want ErrMenuItemCategoryInvalid got %v", err)
	}

	item, err := menuItemSvc.Create(CreateMenuItemInput{Title: " Lemon Herb Chicken ", Price: price, CategoryID: category.ID, Featured: true})
	if err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	if item.Title != "Lemon Herb Chicken" {
		t.Fatalf("title should be trimmed, got %q", item.Title)
	}
	if item.Category == nil || item.Category.Title != "Mains" {
		t.Fatalf("expected category preloaded, got %+v", item.Category)
	}
}

func TestListMenuItemsFilters(t *testing.T) {
	menuItemSvc, categorySvc, _ := newCatalogServiceTest(t)
	mains, _ := categorySvc.Create("Mains")
	desserts, _ := categorySvc.Create("Desserts")

	seed := []struct {
		title    string
		price    string
		category uint
		featured bool
	}{
		{title: "Lemon Herb Chicken", price: "16.50", category: mains.ID, featured: true},
		{title: "Grilled Salmon", price: "18.75", category: mains.ID},
		{title: "Lemon Dessert", price: "6.25", category: desserts.ID, featured: true},
	}
	for _, row := range seed {
		price, _ := models.NewMoneyFromString(row.price)
		if _, err := menuItemSvc.Create(CreateMenuItemInput{Title: row.title, Price: price, CategoryID: row.category, Featured: row.featured}); err != nil {
			t.Fatalf("create %s failed: %v", row.title, err)
		}
	}

	items, total, err := menuItemSvc.List(ListMenuItemsInput{CategoryID: mains.ID})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("category filter want 2 items got total=%d len=%d", total, len(items))
	}

	featured := true
	items, total, err = menuItemSvc.List(ListMenuItemsInput{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("featured filter want 2 got %d", total)
	}

	items, total, err = menuItemSvc.List(ListMenuItemsInput{Search: "lemon"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("search filter want 2 got %d", total)
	}

	items, total, err = menuItemSvc.List(ListMenuItemsInput{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 3 || len(items) != 2 {
		t.Fatalf("pagination want total=3 len=2 got total=%d len=%d", total, len(items))
	}
}

func TestCategoryUniqueTitle(t *testing.T) {
	_, categorySvc, _ := newCatalogServiceTest(t)
	if _, err := categorySvc.Create("Drinks"); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := categorySvc.Create("Drinks"); !errors.Is(err, ErrCategoryTitleTaken) {
		t.Fatalf("duplicate title want ErrCategoryTitleTaken got %v", err)
	}
}

func TestDeleteCategoryInUse(t *testing.T) {
	menuItemSvc, categorySvc, _ := newCatalogServiceTest(t)
	category, err := categorySvc.Create("Appetizers")
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	price, _ := models.NewMoneyFromString("7.50")
	if _, err := menuItemSvc.Create(CreateMenuItemInput{Title: "Bruschetta", Price: price, CategoryID: category.ID}); err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}

	if err := categorySvc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("delete in-use category want ErrCategoryInUse got %v", err)
	}
}
