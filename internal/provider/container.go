package provider

import (
	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/queue"
	"github.com/eshop-next/internal/repository"
	"github.com/eshop-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	SupplierRepo repository.SupplierRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	ContactRepo  repository.ContactRepository
	OrderRepo    repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	SupplierService *service.SupplierService
	ProductService  *service.ProductService
	CartService     *service.CartService
	ContactService  *service.ContactService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo, c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.SupplierRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.ContactService = service.NewContactService(c.ContactRepo, c.OrderRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ContactRepo, c.QueueClient)
}
