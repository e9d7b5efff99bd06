package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/application/serviceimpl"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/infrastructure/email"
	"github.com/DsDac0/Website/infrastructure/export"
	"github.com/DsDac0/Website/infrastructure/messaging"
	natspkg "github.com/DsDac0/Website/infrastructure/nats"
	"github.com/DsDac0/Website/infrastructure/payment"
	"github.com/DsDac0/Website/infrastructure/postgres"
	redispkg "github.com/DsDac0/Website/infrastructure/redis"
	"github.com/DsDac0/Website/infrastructure/storage"
	"github.com/DsDac0/Website/infrastructure/telegram"
	"github.com/DsDac0/Website/infrastructure/websocket"
	"github.com/DsDac0/Website/interfaces/api/handlers"
	"github.com/DsDac0/Website/pkg/cart"
	"github.com/DsDac0/Website/pkg/config"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/metrics"
	"github.com/DsDac0/Website/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB              *gorm.DB
	RedisClient     *redispkg.Client // optional
	NATSClient      *natspkg.Client  // optional
	NATSSubscriber  *natspkg.Subscriber
	Storage         ports.StoragePort
	Cache           ports.CachePort
	SessionStore    ports.SessionStorePort
	EventScheduler  scheduler.EventScheduler
	Metrics         *metrics.AppMetrics
	metricsShutdown metrics.ShutdownFunc

	// Adapters
	Mailer         ports.OrderMailerPort
	Notifier       ports.NotifierPort
	OrderPublisher ports.OrderEventPublisherPort
	OrderEvents    ports.OrderEventSubscriberPort
	CardPayments   ports.CardPaymentPort
	PayPal         ports.PayPalPort

	// Repositories
	CategoryRepository  repositories.CategoryRepository
	CarRepository       repositories.CarRepository
	ProductRepository   repositories.ProductRepository
	CartRepository      repositories.CartRepository
	OrderRepository     repositories.OrderRepository
	ContactRepository   repositories.ContactRepository
	AdminUserRepository repositories.AdminUserRepository

	// Services
	CategoryService       services.CategoryService
	CarService            services.CarService
	ProductService        services.ProductService
	CartService           services.CartService
	OrderService          services.OrderService
	ContactService        services.ContactService
	AdminAuthService      services.AdminAuthService
	PaymentService        services.PaymentService
	SessionCleanupService *serviceimpl.SessionCleanupService

	// Realtime
	WebSocketManager *websocket.Manager
	OrderBroadcaster *websocket.OrderBroadcaster
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initLogger(); err != nil {
		return err
	}
	if err := c.initMetrics(); err != nil {
		return err
	}
	if err := c.initInfrastructure(); err != nil {
		return err
	}
	c.initRepositories()
	c.initAdapters()
	c.initServices()
	if err := c.initSeedData(); err != nil {
		return err
	}
	if err := c.initScheduler(); err != nil {
		return err
	}
	return c.initRealtime()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}
	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initMetrics() error {
	m, shutdown, err := metrics.Init(context.Background(), c.Config.Metrics)
	if err != nil {
		return err
	}
	c.Metrics = m
	c.metricsShutdown = shutdown
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Driver:   c.Config.Database.Driver,
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		DSN:      c.Config.Database.DSN,
		LogLevel: c.Config.Database.LogLevel,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", dbConfig.Driver, "db", dbConfig.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional: without it the catalog is not cached and sessions live in the database.
	c.SessionStore = postgres.NewSessionStore(db)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis, c.Metrics)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.Cache = redisClient
			c.SessionStore = redispkg.NewSessionStore(redisClient)
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (order events stay in-process)", "error", err)
		} else {
			c.NATSClient = natsClient
			logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
		}
	}

	return c.initStorage()
}

func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}
	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.CarRepository = postgres.NewCarRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.CartRepository = postgres.NewCartRepository(c.DB)
	c.OrderRepository = postgres.NewOrderRepository(c.DB)
	c.ContactRepository = postgres.NewContactRepository(c.DB)
	c.AdminUserRepository = postgres.NewAdminUserRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initAdapters() {
	c.Mailer = email.NewSendGridMailer(email.Config{
		APIKey:      c.Config.Mail.SendGridAPIKey,
		FromAddress: c.Config.Mail.FromAddress,
		FromName:    c.Config.Mail.FromName,
	})

	c.Notifier = telegram.NewTelegramNotifier(telegram.Config{
		BotToken: c.Config.Telegram.BotToken,
		ChatID:   c.Config.Telegram.ChatID,
		Enabled:  c.Config.Shop.StaffAlertEnabled && c.Config.Telegram.Enabled(),
	})

	if c.NATSClient != nil {
		c.OrderPublisher = natspkg.NewPublisher(c.NATSClient)
		c.NATSSubscriber = natspkg.NewSubscriber(c.NATSClient.Conn())
		c.OrderEvents = messaging.NewNATSOrderSubscriber(c.NATSSubscriber)
	} else {
		bus := messaging.NewLocalOrderBus()
		c.OrderPublisher = bus
		c.OrderEvents = bus
	}

	c.CardPayments = payment.NewStripeGateway(c.Config.Stripe.SecretKey)
	c.PayPal = payment.NewPayPalGateway(payment.PayPalConfig{
		ClientID:     c.Config.PayPal.ClientID,
		ClientSecret: c.Config.PayPal.ClientSecret,
		Environment:  c.Config.PayPal.Environment,
	})

	logger.Info("Adapters initialized",
		"mail", c.Config.Mail.SendGridAPIKey != "",
		"telegram", c.Notifier.IsEnabled(),
		"stripe", c.CardPayments.IsConfigured(),
		"paypal", c.PayPal.IsConfigured(),
		"nats", c.NATSClient != nil,
	)
}

func (c *Container) initServices() {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.Cache)
	c.CarService = serviceimpl.NewCarService(c.CarRepository, c.Cache)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository, c.Storage)
	c.CartService = serviceimpl.NewCartService(c.CartRepository, c.ProductRepository)
	c.OrderService = serviceimpl.NewOrderService(c.OrderRepository, c.ProductRepository, serviceimpl.OrderDeps{
		Mailer:    c.Mailer,
		Notifier:  c.Notifier,
		Publisher: c.OrderPublisher,
		Exporter:  export.NewXLSXOrderExporter(),
		Metrics:   c.Metrics,
		Shipping:  cart.NewShippingPolicy(c.Config.Shop.FreeShippingThreshold, c.Config.Shop.ShippingFee),
	})
	c.ContactService = serviceimpl.NewContactService(c.ContactRepository, c.Notifier, c.Metrics)
	c.AdminAuthService = serviceimpl.NewAdminAuthService(
		c.AdminUserRepository,
		c.SessionStore,
		c.Config.Session.Secret,
		time.Duration(c.Config.Session.MaxAge)*time.Second,
	)
	c.PaymentService = serviceimpl.NewPaymentService(c.CardPayments, c.PayPal, c.Config.Stripe.Currency)
	logger.Info("Services initialized")
}

// initSeedData fills an empty catalog and makes sure the default admin exists.
func (c *Container) initSeedData() error {
	if !c.Config.Shop.SeedData {
		return nil
	}
	ctx := context.Background()

	if err := postgres.Seed(ctx, c.DB); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	_, created, err := c.AdminAuthService.EnsureAdmin(ctx, c.Config.Shop.DefaultAdminUsername, c.Config.Shop.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to ensure default admin: %w", err)
	}
	if created {
		logger.Warn("Default admin created; change its password", "username", c.Config.Shop.DefaultAdminUsername)
	}
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.SessionCleanupService = serviceimpl.NewSessionCleanupService(c.AdminAuthService, c.EventScheduler, c.Config.Session.PurgeCron)
	if err := c.SessionCleanupService.RegisterCleanupJob(); err != nil {
		return fmt.Errorf("failed to register session cleanup: %w", err)
	}
	c.EventScheduler.Start()
	return nil
}

func (c *Container) initRealtime() error {
	c.WebSocketManager = websocket.NewManager()
	c.OrderBroadcaster = websocket.NewOrderBroadcaster(c.OrderEvents, c.WebSocketManager)
	if err := c.OrderBroadcaster.Start(); err != nil {
		logger.Warn("Admin order feed disabled", "error", err)
	}
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup")

	if c.OrderBroadcaster != nil {
		if err := c.OrderBroadcaster.Stop(); err != nil {
			logger.Warn("Failed to stop order broadcaster", "error", err)
		}
	}

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		}
	}

	if c.metricsShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.metricsShutdown(ctx); err != nil {
			logger.Warn("Failed to flush metrics", "error", err)
		}
		cancel()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database", "error", err)
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		CategoryService:  c.CategoryService,
		CarService:       c.CarService,
		ProductService:   c.ProductService,
		CartService:      c.CartService,
		OrderService:     c.OrderService,
		ContactService:   c.ContactService,
		AdminAuthService: c.AdminAuthService,
		PaymentService:   c.PaymentService,
		WebSocketManager: c.WebSocketManager,
		CookieName:       c.Config.Session.CookieName,
		CookieSecure:     c.Config.Session.Secure,
		SessionMaxAge:    c.Config.Session.MaxAge,
		MaxUploadSize:    c.Config.Storage.MaxUploadSize,
	}
}
