package main

import (
	"fmt"

	"github.com/littlelemon-next/internal/config"
	"github.com/littlelemon-next/internal/constants"
	"github.com/littlelemon-next/internal/logger"
	"github.com/littlelemon-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 创建用户组
	groupNames := []string{constants.GroupManager, constants.GroupDeliveryCrew}
	groups := map[string]models.Group{}
	for _, name := range groupNames {
		var existing models.Group
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			existing = models.Group{Name: name}
			if err := models.DB.Create(&existing).Error; err != nil {
				stdLog.Fatalf("Failed to create group %s: %v", name, err)
			}
			stdLog.Printf("Created group: %s", name)
		} else {
			stdLog.Printf("Group already exists: %s", name)
		}
		groups[name] = existing
	}

	// 创建用户（含超管、经理、配送员与顾客）
	seedUsers := []struct {
		Username    string
		Email       string
		Password    string
		IsSuperuser bool
		Groups      []string
	}{
		{Username: "admin", Email: "admin@littlelemon.dev", Password: "admin123456", IsSuperuser: true},
		{Username: "mario", Email: "mario@littlelemon.dev", Password: "lemon@789!", Groups: []string{constants.GroupManager}},
		{Username: "john", Email: "john@littlelemon.dev", Password: "lemon@789!", Groups: []string{constants.GroupDeliveryCrew}},
		{Username: "adrian", Email: "adrian@littlelemon.dev", Password: "lemon@789!"},
		{Username: "sana", Email: "sana@littlelemon.dev", Password: "lemon@789!"},
	}

	for _, seed := range seedUsers {
		var user models.User
		if err := models.DB.Where("username = ?", seed.Username).First(&user).Error; err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
			if err != nil {
				stdLog.Printf("Failed to hash password for %s: %v", seed.Username, err)
				continue
			}
			user = models.User{
				Username:     seed.Username,
				Email:        seed.Email,
				PasswordHash: string(hash),
				IsSuperuser:  seed.IsSuperuser,
			}
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", seed.Username, err)
				continue
			}
			stdLog.Printf("Created user: %s", seed.Username)
		} else {
			stdLog.Printf("User already exists: %s", seed.Username)
		}

		for _, groupName := range seed.Groups {
			group, ok := groups[groupName]
			if !ok {
				continue
			}
			var count int64
			models.DB.Table("user_groups").
				Where("user_id = ? AND group_id = ?", user.ID, group.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			if err := models.DB.Model(&user).Association("Groups").Append(&group); err != nil {
				stdLog.Printf("Failed to add %s to group %s: %v", seed.Username, groupName, err)
			} else {
				stdLog.Printf("Added %s to group %s", seed.Username, groupName)
			}
		}
	}

	// 添加分类
	categories := []models.Category{
		{Title: "Appetizers"},
		{Title: "Mains"},
		{Title: "Desserts"},
		{Title: "Drinks"},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("title = ?", cat.Title).First(&existing).Error; err != nil {
			existing = cat
			if err := models.DB.Create(&existing).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Title, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Title)
		} else {
			stdLog.Printf("Category already exists: %s", cat.Title)
		}
		categoryIDs[existing.Title] = existing.ID
	}

	// 添加菜品
	menuItems := []struct {
		Title    string
		Price    float64
		Category string
		Featured bool
	}{
		{Title: "Bruschetta", Price: 7.50, Category: "Appetizers", Featured: false},
		{Title: "Greek Salad", Price: 9.99, Category: "Appetizers", Featured: true},
		{Title: "Lemon Herb Chicken", Price: 16.50, Category: "Mains", Featured: true},
		{Title: "Grilled Salmon", Price: 18.75, Category: "Mains", Featured: false},
		{Title: "Pasta Primavera", Price: 13.25, Category: "Mains", Featured: false},
		{Title: "Lemon Dessert", Price: 6.25, Category: "Desserts", Featured: true},
		{Title: "Baklava", Price: 5.99, Category: "Desserts", Featured: false},
		{Title: "Fresh Lemonade", Price: 3.50, Category: "Drinks", Featured: false},
	}

	for _, item := range menuItems {
		categoryID, ok := categoryIDs[item.Category]
		if !ok || categoryID == 0 {
			stdLog.Printf("Skip menu item %s: category missing", item.Title)
			continue
		}
		var existing models.MenuItem
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			record := models.MenuItem{
				Title:      item.Title,
				Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(item.Price)),
				CategoryID: categoryID,
				Featured:   item.Featured,
			}
			if err := models.DB.Create(&record).Error; err != nil {
				stdLog.Printf("Failed to create menu item %s: %v", item.Title, err)
			} else {
				stdLog.Printf("Created menu item: %s", item.Title)
			}
		} else {
			existing.Price = models.NewMoneyFromDecimal(decimal.NewFromFloat(item.Price))
			existing.CategoryID = categoryID
			existing.Featured = item.Featured
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update menu item %s: %v", item.Title, err)
			} else {
				stdLog.Printf("Updated menu item: %s", item.Title)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 2 Groups (Manager, DeliveryCrew)")
	fmt.Println("- 5 Users (1 superuser, 1 manager, 1 delivery crew, 2 customers)")
	fmt.Println("- 4 Categories")
	fmt.Println("- 8 Menu items")
}
