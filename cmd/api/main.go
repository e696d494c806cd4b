package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/config"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/database"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/kvstore"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/repository"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/upstream"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/handler"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/routes"
	"github.com/jefdiaz/balanceone-api/pkg/logger"
	"github.com/jefdiaz/balanceone-api/pkg/oauth"
	"github.com/jefdiaz/balanceone-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	zlog := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	defer zlog.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	request.RegisterValidators()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	productRepo := repository.NewProductRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	cartStore := kvstore.NewGormStore(db)

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				zlog.Warn("idempotency key cleanup failed", zap.Error(err))
			}
		}
	}()

	// Initialize GitHub OAuth service
	githubOAuthService := oauth.NewGitHubOAuthService(oauth.GitHubOAuthConfig{
		ClientID:           cfg.OAuth.GitHubClientID,
		ClientSecret:       cfg.OAuth.GitHubClientSecret,
		RedirectURL:        cfg.OAuth.GitHubRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize upstream catalog client when one is configured
	var upstreamClient *upstream.Client
	if cfg.Upstream.BaseURL != "" {
		upstreamClient = upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout, zlog)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, githubOAuthService, zlog)
	supplierService := service.NewSupplierService(supplierRepo, zlog)
	branchService := service.NewBranchService(branchRepo, zlog)
	catalogService := service.NewCatalogService(productRepo, supplierRepo, branchRepo, upstreamClient, zlog)
	cartService := service.NewCartService(cartStore, productRepo, zlog)
	checkoutService := service.NewCheckoutService(cartService, recordRepo, zlog)
	recordService := service.NewRecordService(recordRepo, zlog)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, githubOAuthService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Branch:   handler.NewBranchHandler(branchService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Record:   handler.NewRecordHandler(recordService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          zlog,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
