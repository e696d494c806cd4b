package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/config"
	domainRepo "github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/handler"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/middleware"
	"github.com/jefdiaz/balanceone-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Supplier *handler.SupplierHandler
	Branch   *handler.BranchHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Record   *handler.RecordHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())
		protected.Use(middleware.Idempotency(deps.IdempotencyRepo))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// GitHub OAuth routes
		auth.GET("/github", h.Auth.GitHubAuth)
		auth.GET("/github/callback", h.Auth.GitHubCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.GetProfile)

	suppliers := protected.Group("/suppliers")
	{
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.GET("/slug/:slug", h.Supplier.GetBySlug)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	branches := protected.Group("/branches")
	{
		branches.POST("", h.Branch.Create)
		branches.GET("", h.Branch.List)
		branches.GET("/:id", h.Branch.Get)
		branches.GET("/slug/:slug", h.Branch.GetBySlug)
		branches.PUT("/:id", h.Branch.Update)
		branches.DELETE("/:id", h.Branch.Delete)
	}

	catalog := protected.Group("/catalog")
	{
		catalog.GET("/suppliers/:slug/products", h.Catalog.SupplierProducts)
		catalog.POST("/suppliers/:slug/products", h.Catalog.CreateSupplierProduct)
		catalog.GET("/branches/:slug/products", h.Catalog.BranchProducts)
		catalog.POST("/branches/:slug/products", h.Catalog.CreateBranchProduct)
		catalog.PUT("/products/:id", h.Catalog.UpdateProduct)
		catalog.DELETE("/products/:id", h.Catalog.DeleteProduct)
		catalog.POST("/sync", h.Catalog.Sync)
	}

	cart := protected.Group("/cart/:kind")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:item_id", h.Cart.UpdateItem)
		cart.DELETE("/items/:item_id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	protected.POST("/checkout/:kind", h.Checkout.Checkout)

	records := protected.Group("/records")
	{
		records.GET("/:kind", h.Record.List)
		records.GET("/:kind/receipt/:receipt_number", h.Record.GetByReceiptNumber)
	}

	record := protected.Group("/record")
	{
		record.GET("/:id", h.Record.Get)
		record.PUT("/:id", h.Record.Update)
		record.PUT("/:id/status", h.Record.ChangeStatus)
		record.DELETE("/:id", h.Record.Delete)
	}
}
