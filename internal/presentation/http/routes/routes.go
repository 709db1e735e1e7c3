package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/config"
	"github.com/cafepos/cafepos-api/internal/domain/entity"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/internal/presentation/http/handler"
	"github.com/cafepos/cafepos-api/internal/presentation/http/middleware"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Cafe     *handler.CafeHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Table    *handler.TableHandler
	Cart     *handler.CartHandler
	Payment  *handler.PaymentHandler
	Order    *handler.OrderHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		duration := deps.Cfg.RateLimit.Duration
		if duration <= 0 {
			duration = 60
		}
		rateLimiter := middleware.NewCafeRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	manager := middleware.RequireRole(entity.RoleMudur, entity.RolePatron)

	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Cafe settings
	protected.GET("/cafe", h.Cafe.Get)
	protected.PUT("/cafe/settings", manager, h.Cafe.UpdateSettings)

	// Staff (the user-select screen reads the list; edits are manager only)
	users := protected.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", manager, h.User.Create)
		users.PUT("/:id", manager, h.User.Update)
	}

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", manager, h.Product.Create)
		products.PUT("/:id", manager, h.Product.Update)
		products.DELETE("/:id", manager, h.Product.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", manager, h.Category.Create)
		categories.PUT("/:id", manager, h.Category.Update)
		categories.DELETE("/:id", manager, h.Category.Delete)
	}

	// Floor plan
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/:id", h.Table.Get)
		tables.POST("", manager, h.Table.Create)
		tables.PUT("/:id", manager, h.Table.Update)
		tables.PUT("/:id/status", h.Table.SetStatus)
		tables.DELETE("/:id", manager, h.Table.Delete)
	}

	// Server-side carts and the payment handoff
	carts := protected.Group("/carts")
	{
		carts.GET("", h.Cart.List)
		carts.GET("/:id", h.Cart.Get)
		carts.POST("", idempotency, h.Cart.Create)
		carts.PUT("/:id/items", h.Cart.UpdateItems)
		carts.DELETE("/:id", h.Cart.Delete)
		carts.POST("/commit", h.Cart.Commit)
		carts.POST("/:id/commit", h.Cart.CommitByID)
	}

	// Payment screen
	payment := protected.Group("/payment")
	{
		payment.POST("/session", h.Payment.Start)
		payment.GET("/session", h.Payment.Get)
		payment.DELETE("/session", h.Payment.Abandon)
		payment.POST("/session/keypad", h.Payment.Keypad)
		payment.POST("/session/preset", h.Payment.Preset)
		payment.POST("/session/select", h.Payment.Select)
		payment.POST("/session/tenders", h.Payment.AddTender)
		payment.DELETE("/session/tenders/:index", h.Payment.RemoveTender)
		payment.POST("/session/undo", h.Payment.Undo)
		payment.POST("/session/lines/:id/click", h.Payment.ClickLine)
		payment.POST("/session/complete", idempotency, h.Payment.Complete)
	}

	// Order history
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/print", h.Printer.PrintOrder)
	}

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", manager, h.Printer.TestPrint)
	}
}
