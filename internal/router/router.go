package router

import (
	"fmt"
	"strings"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/constants"
	publichandlers "github.com/eshop-next/internal/http/handlers/public"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited_wait",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/suppliers", publicHandler.GetSuppliers)
			public.GET("/suppliers/:id", publicHandler.GetSupplier)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.UpsertCartItem)
			user.DELETE("/cart/items/:id", publicHandler.DeleteCartItem)
			user.GET("/contacts", publicHandler.ListContacts)
			user.POST("/contacts", publicHandler.CreateContact)
			user.PUT("/contacts/:id", publicHandler.UpdateContact)
			user.DELETE("/contacts/:id", publicHandler.DeleteContact)
			user.POST("/orders/confirm", publicHandler.ConfirmOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.PATCH("/orders/:id/status", publicHandler.UpdateOrderStatus)

			// 目录维护接口
			catalog := user.Group("/catalog")
			{
				catalog.POST("/products", publicHandler.CreateProduct)
				catalog.PUT("/products/:id", publicHandler.UpdateProduct)
				catalog.DELETE("/products/:id", publicHandler.DeleteProduct)
				catalog.POST("/suppliers", publicHandler.CreateSupplier)
				catalog.PUT("/suppliers/:id", publicHandler.UpdateSupplier)
				catalog.DELETE("/suppliers/:id", publicHandler.DeleteSupplier)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
