package v1

import (
	"github.com/gin-gonic/gin"

	"ventapos/internal/domain/auth"
	"ventapos/internal/domain/catalogs/category"
	"ventapos/internal/domain/catalogs/client"
	"ventapos/internal/domain/catalogs/product"
	"ventapos/internal/domain/catalogs/supplier"
	"ventapos/internal/domain/posting"
	"ventapos/internal/domain/reports"
	"ventapos/internal/infrastructure/http/v1/handlers"
	"ventapos/internal/infrastructure/http/v1/middleware"
	"ventapos/internal/infrastructure/storage/postgres"
	"ventapos/internal/infrastructure/storage/postgres/auth_repo"
	"ventapos/internal/infrastructure/storage/postgres/catalog_repo"
	"ventapos/internal/infrastructure/storage/postgres/document_repo"
	"ventapos/internal/infrastructure/storage/postgres/report_repo"
	"ventapos/pkg/logger"
	"ventapos/pkg/txnumber"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (used for health checks)
	Pool *postgres.Pool

	// TxManager owns transaction boundaries for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Version reported by /health/info
	Version string

	// EnableGzip turns on response compression
	EnableGzip bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.EnableGzip {
		router.Use(middleware.Gzip())
	}
	// ErrorHandler renders inside the gzip scope so error bodies compress too.
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// Shared repositories
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	clientRepo := catalog_repo.NewClientRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	categoryRepo := catalog_repo.NewCategoryRepo(cfg.TxManager)
	saleRepo := document_repo.NewSaleRepo(cfg.TxManager)
	purchaseRepo := document_repo.NewPurchaseRepo(cfg.TxManager)

	engine := posting.NewEngine(posting.Config{
		Sales:     saleRepo,
		Purchases: purchaseRepo,
		Products:  productRepo,
		Clients:   clientRepo,
		Suppliers: supplierRepo,
		TxManager: cfg.TxManager,
		Numbers:   txnumber.New(),
	})

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		adminOnly := middleware.RequireRole(auth.RoleAdmin)
		anySeller := middleware.RequireRole(auth.RoleAdmin, auth.RoleSeller)

		// Catalogs: reads for all authenticated users, writes for admins
		catalogs := protected.Group("/catalog")
		{
			productService := product.NewService(productRepo, cfg.TxManager)
			productHandler := handlers.NewProductHandler(baseHandler, productService)
			productsGroup := catalogs.Group("/products")
			productsGroup.GET("/low-stock", productHandler.LowStock)
			RegisterCatalogRoutes(productsGroup, productHandler, adminOnly)

			clientService := client.NewService(clientRepo, cfg.TxManager)
			clientHandler := handlers.NewClientHandler(baseHandler, clientService)
			RegisterCatalogRoutes(catalogs.Group("/clients"), clientHandler, adminOnly)

			supplierService := supplier.NewService(supplierRepo, cfg.TxManager)
			supplierHandler := handlers.NewSupplierHandler(baseHandler, supplierService)
			RegisterCatalogRoutes(catalogs.Group("/suppliers"), supplierHandler, adminOnly)

			categoryService := category.NewService(categoryRepo, cfg.TxManager)
			categoryHandler := handlers.NewCategoryHandler(baseHandler, categoryService)
			RegisterCatalogRoutes(catalogs.Group("/categories"), categoryHandler, adminOnly)
		}

		// Documents: sellers can post sales; purchases and deletions are admin-only
		{
			saleHandler := handlers.NewSaleHandler(baseHandler, engine, saleRepo)
			RegisterDocumentRoutes(protected.Group("/sales"), saleHandler, anySeller, adminOnly)

			purchaseHandler := handlers.NewPurchaseHandler(baseHandler, engine, purchaseRepo)
			RegisterDocumentRoutes(protected.Group("/purchases"), purchaseHandler, adminOnly, adminOnly)
		}

		// Reports: admin-only
		{
			reportRepo := report_repo.NewReportRepo(cfg.TxManager)
			reportService := reports.NewService(reportRepo)
			reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

			reportsGroup := protected.Group("/reports", adminOnly)
			reportsGroup.GET("/stock-valuation", reportHandler.GetStockValuation)
			reportsGroup.GET("/sales-summary", reportHandler.GetSalesSummary)
		}
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	userRepo := auth_repo.NewUserRepo(cfg.TxManager)
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService, userRepo)

	publicAuth := rg.Group("/auth")

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}
