package router

import (
	"net/http"

	"github.com/littlelemon-next/internal/config"
	apihandlers "github.com/littlelemon-next/internal/http/handlers/api"
	"github.com/littlelemon-next/internal/logger"
	"github.com/littlelemon-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// 目录读取：公开访问，不鉴权也不限流
		public := api.Group("")
		{
			public.GET("/categories", handler.ListCategories)
			public.GET("/categories/:id", handler.GetCategory)
			public.GET("/menu-items", handler.ListMenuItems)
			public.GET("/menu-items/:id", handler.GetMenuItem)
		}

		// 登录态接口：鉴权 → 授权 → 限流
		authed := api.Group("")
		authed.Use(
			AuthMiddleware(cfg.Auth.SecretKey, c.UserRepo),
			EnforceMiddleware(c.AuthzService),
			ThrottleMiddleware(c.Limiter, cfg.Throttle),
		)
		{
			authed.POST("/categories", handler.CreateCategory)
			authed.PUT("/categories/:id", handler.UpdateCategory)
			authed.PATCH("/categories/:id", handler.UpdateCategory)
			authed.DELETE("/categories/:id", handler.DeleteCategory)

			authed.POST("/menu-items", handler.CreateMenuItem)
			authed.PUT("/menu-items/:id", handler.UpdateMenuItem)
			authed.PATCH("/menu-items/:id", handler.PatchMenuItem)
			authed.DELETE("/menu-items/:id", handler.DeleteMenuItem)

			authed.GET("/cart/menu-items", handler.ListCartItems)
			authed.POST("/cart/menu-items", handler.AddCartItem)
			authed.DELETE("/cart/menu-items", handler.ClearCart)
			authed.GET("/cart/menu-items/:id", handler.GetCartItem)
			authed.PUT("/cart/menu-items/:id", handler.UpdateCartItem)
			authed.PATCH("/cart/menu-items/:id", handler.UpdateCartItem)
			authed.DELETE("/cart/menu-items/:id", handler.RemoveCartItem)

			authed.GET("/orders", handler.ListOrders)
			authed.POST("/orders", handler.PlaceOrder)
			authed.GET("/orders/:id", handler.GetOrder)
			authed.PUT("/orders/:id", handler.UpdateOrder)
			authed.PATCH("/orders/:id", handler.UpdateOrder)
			authed.DELETE("/orders/:id", handler.DeleteOrder)

			authed.GET("/groups/manager/users", handler.ListManagers)
			authed.POST("/groups/manager/users", handler.AddManager)
			authed.DELETE("/groups/manager/users/:user_id", handler.RemoveManager)
			authed.GET("/groups/delivery-crew/users", handler.ListDeliveryCrew)
			authed.POST("/groups/delivery-crew/users", handler.AddDeliveryCrew)
			authed.DELETE("/groups/delivery-crew/users/:user_id", handler.RemoveDeliveryCrew)
		}
	}

	return r
}
