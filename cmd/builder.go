package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"orderstock/api"
	"orderstock/api/health"
	apiorder "orderstock/api/order"
	apiproduct "orderstock/api/product"
	orderapp "orderstock/application/order"
	productapp "orderstock/application/product"
	"orderstock/config"
	orderdomain "orderstock/domain/order"
	productdomain "orderstock/domain/product"
	"orderstock/domain/shared"
	"orderstock/infrastructure/persistence/memory"
	"orderstock/infrastructure/persistence/mysql"
	"orderstock/infrastructure/persistence/retry"
	"orderstock/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp Assemble the application from configuration
// database.type selects the persistence adapter: "mysql" wires GORM
// repositories, the transactional outbox and its worker; anything else wires
// the in-memory adapter used for development and tests.
func NewApp(cfg *config.Config) *App {
	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("database", cfg.Database.Type))

	var (
		db           *gorm.DB
		productRepo  productdomain.Repository
		orderRepo    orderdomain.Repository
		uowFactory   shared.UnitOfWorkFactory
		outboxWorker outboxRunner
	)

	switch cfg.Database.Type {
	case "mysql":
		db, productRepo, orderRepo, uowFactory, outboxWorker = buildMySQLPersistence(cfg)
	default:
		logger.Info("Using in-memory persistence layer")
		productRepo = memory.NewProductRepository()
		orderRepo = memory.NewOrderRepository()
		uowFactory = memory.NewUnitOfWorkFactory()
	}

	if cfg.IsDevelopment() {
		seedCatalog(productRepo, uowFactory, cfg.App.Currency)
	}

	orderService := orderapp.NewApplicationService(orderRepo, productRepo, uowFactory, cfg.App.Currency)
	productService := productapp.NewApplicationService(productRepo, uowFactory)

	var healthDB interface{}
	if db != nil {
		sqlDB, _ := db.DB()
		healthDB = sqlDB
	}

	healthController := health.NewController(cfg, healthDB)
	productController := apiproduct.NewController(productService)
	orderController := apiorder.NewController(orderService)

	router := api.NewRouter(cfg, healthController, productController, orderController)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config:       cfg,
		router:       router,
		server:       server,
		db:           db,
		outboxWorker: outboxWorker,
	}
}

func buildMySQLPersistence(cfg *config.Config) (*gorm.DB, productdomain.Repository, orderdomain.Repository, shared.UnitOfWorkFactory, outboxRunner) {
	logger.Info("Using MySQL/GORM persistence layer")

	mysqlConfig := &mysql.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Log.Level,
	}

	db, err := mysqlConfig.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Failed to ping MySQL", zap.Error(err))
	}

	// Auto migration in development environment
	if cfg.IsDevelopment() {
		if err := mysql.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	uowFactory := mysql.NewUnitOfWorkFactory(db, retry.FromAppConfig(cfg))

	var worker outboxRunner
	if cfg.Outbox.Enabled {
		w, err := mysql.NewOutboxWorker(
			mysql.NewOutboxRepository(db),
			&mysql.LoggingOutboxPublisher{},
			cfg.Outbox.PollInterval,
			cfg.Outbox.BatchSize,
			cfg.Outbox.MaxAttempts,
		)
		if err != nil {
			logger.Fatal("Failed to create outbox worker", zap.Error(err))
		}
		worker = w
	}

	return db, productRepo, orderRepo, uowFactory, worker
}

// seedCatalog Populate the catalog with a few development products
// Skipped when the catalog already has entries, so restarts against a
// persistent database do not duplicate rows.
func seedCatalog(productRepo productdomain.Repository, uowFactory shared.UnitOfWorkFactory, currency string) {
	ctx := context.Background()

	existing, err := productRepo.FindAll(ctx)
	if err != nil {
		logger.Warn("Skipping catalog seed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}

	seeds := []struct {
		name        string
		description string
		price       int64
		stock       int
	}{
		{"Laptop", "15-inch developer laptop", 99999, 10},
		{"Mouse", "Wireless optical mouse", 2999, 50},
		{"Keyboard", "Mechanical keyboard, tenkeyless", 8999, 25},
	}

	for _, seed := range seeds {
		price, err := shared.NewMoney(seed.price, currency)
		if err != nil {
			logger.Warn("Skipping seed product", zap.String("name", seed.name), zap.Error(err))
			continue
		}

		uow := uowFactory.New()
		err = uow.Execute(ctx, func(ctx context.Context) error {
			p, err := productdomain.NewProduct(productRepo.NextIdentity(), seed.name, seed.description, price, seed.stock)
			if err != nil {
				return err
			}
			if err := productRepo.Save(ctx, p); err != nil {
				return err
			}
			uow.RegisterNew(p)
			return nil
		})
		if err != nil {
			logger.Warn("Failed to seed product", zap.String("name", seed.name), zap.Error(err))
			continue
		}
		logger.Info("Seeded product", zap.String("name", seed.name), zap.Int("stock", seed.stock))
	}
}
