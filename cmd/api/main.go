package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/config"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/internal/infrastructure/database"
	"github.com/cafepos/cafepos-api/internal/infrastructure/repository"
	"github.com/cafepos/cafepos-api/internal/infrastructure/snapshot"
	"github.com/cafepos/cafepos-api/internal/presentation/http/handler"
	"github.com/cafepos/cafepos-api/internal/presentation/http/routes"
	"github.com/cafepos/cafepos-api/pkg/printer"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Payment handoff slot. Redis when configured, otherwise in-process
	var snapshots domainRepo.SnapshotStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		snapshots = snapshot.NewRedisStore(client)
		log.Printf("Payment handoff store: redis (%s)", cfg.Redis.Addr)
	} else {
		snapshots = snapshot.NewMemoryStore()
		log.Println("Payment handoff store: in-memory")
	}

	// Receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: printer unavailable: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	cafeRepo := repository.NewCafeRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tableRepo := repository.NewTableRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	cafeService := service.NewCafeService(cafeRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tableService := service.NewTableService(tableRepo)
	cartService := service.NewCartService(cartRepo, productRepo, tableRepo, snapshots)
	orderService := service.NewOrderService(orderRepo)
	printerService := service.NewPrinterService(receiptPrinter, orderRepo, cafeRepo, cfg.Printer.Type)
	paymentService := service.NewPaymentService(
		snapshots,
		snapshot.NewSampleFallback(),
		orderRepo,
		cafeRepo,
		printerService,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, userService),
		Cafe:     handler.NewCafeHandler(cafeService),
		User:     handler.NewUserHandler(userService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Table:    handler.NewTableHandler(tableService),
		Cart:     handler.NewCartHandler(cartService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Order:    handler.NewOrderHandler(orderService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, cfg.App.Port, cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
