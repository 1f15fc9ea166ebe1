package provider

import (
	"github.com/littlelemon-next/internal/authz"
	"github.com/littlelemon-next/internal/cache"
	"github.com/littlelemon-next/internal/config"
	"github.com/littlelemon-next/internal/logger"
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
	"github.com/littlelemon-next/internal/service"
	"github.com/littlelemon-next/internal/throttle"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo     repository.UserRepository
	GroupRepo    repository.GroupRepository
	CategoryRepo repository.CategoryRepository
	MenuItemRepo repository.MenuItemRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthzService    *authz.Service
	CategoryService *service.CategoryService
	MenuItemService *service.MenuItemService
	CartService     *service.CartService
	OrderService    *service.OrderService
	GroupService    *service.GroupService

	// Throttle
	Limiter *throttle.Limiter
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(models.DB)
	groupRepo := repository.NewGroupRepository(models.DB)
	categoryRepo := repository.NewCategoryRepository(models.DB)
	menuItemRepo := repository.NewMenuItemRepository(models.DB)
	cartRepo := repository.NewCartRepository(models.DB)
	orderRepo := repository.NewOrderRepository(models.DB)

	// 授权服务：启动时写入内置角色策略矩阵
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
	} else if err := authzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_authz_failed", "error", err)
	}

	// 限流历史存储：Redis 可用时用 Redis，否则退回进程内存储
	var store throttle.HistoryStore
	if cache.Enabled() {
		store = throttle.NewRedisHistoryStore()
	} else {
		store = throttle.NewMemoryHistoryStore()
	}
	limiter := throttle.NewLimiter(store)

	return &Container{
		Config: cfg,

		UserRepo:     userRepo,
		GroupRepo:    groupRepo,
		CategoryRepo: categoryRepo,
		MenuItemRepo: menuItemRepo,
		CartRepo:     cartRepo,
		OrderRepo:    orderRepo,

		AuthzService:    authzService,
		CategoryService: service.NewCategoryService(categoryRepo),
		MenuItemService: service.NewMenuItemService(menuItemRepo, categoryRepo),
		CartService:     service.NewCartService(cartRepo, menuItemRepo),
		OrderService:    service.NewOrderService(orderRepo, cartRepo, menuItemRepo, userRepo),
		GroupService:    service.NewGroupService(groupRepo, userRepo),

		Limiter: limiter,
	}
}
