package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	contentapp "github.com/shopadmin/backend/internal/application/content"
	mappingapp "github.com/shopadmin/backend/internal/application/mapping"
	orderapp "github.com/shopadmin/backend/internal/application/order"
	promotionapp "github.com/shopadmin/backend/internal/application/promotion"
	vendorapp "github.com/shopadmin/backend/internal/application/vendor"
	"github.com/shopadmin/backend/internal/infrastructure/cache"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shop Admin Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Vendor tree cache. Redis being unreachable at boot is not fatal: the
	// mapping screens still work off an in-process cache.
	var treeCache mappingapp.VendorTreeCache
	redisCache, err := cache.NewRedisTreeCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TreeTTL:  cfg.Redis.TreeTTL,
	}, log)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory vendor tree cache", zap.Error(err))
		treeCache = cache.NewInMemoryTreeCache(cfg.Redis.TreeTTL)
	} else {
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		treeCache = redisCache
		log.Info("Redis vendor tree cache connected")
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	mappingRepo := persistence.NewGormCategoryMappingRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	feedRepo := persistence.NewGormFeedCategoryRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	couponRepo := persistence.NewGormCouponRepository(db.DB)
	sectionRepo := persistence.NewGormSectionRepository(db.DB)

	// Application services
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	mappingService := mappingapp.NewService(categoryRepo, mappingRepo, feedRepo, vendorRepo, treeCache, cfg.Vendors.AllowedCodes)
	vendorService := vendorapp.NewService(vendorRepo, feedRepo, treeCache, cfg.Vendors.AllowedCodes)
	orderService := orderapp.NewService(orderRepo, couponRepo)
	couponService := promotionapp.NewService(couponRepo)
	sectionService := contentapp.NewService(sectionRepo)

	// Handlers
	adminMappingHandler := handler.NewAdminMappingHandler(mappingService, vendorService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	orderHandler := handler.NewOrderHandler(orderService)
	couponHandler := handler.NewCouponHandler(couponService)
	sectionHandler := handler.NewSectionHandler(sectionService)
	systemHandler := handler.NewSystemHandler()

	// Gin engine and middleware stack
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Admin mapping screens. Paths match what the admin UI already calls.
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.GET("/get-our-categories", adminMappingHandler.GetOurCategories)
	adminRoutes.GET("/search-our-categories", adminMappingHandler.SearchOurCategories)
	adminRoutes.GET("/get-category-for-mappings", adminMappingHandler.GetCategoryForMappings)
	adminRoutes.GET("/get-mapped-categories", adminMappingHandler.GetMappedCategories)
	adminRoutes.POST("/map-vendor-category", adminMappingHandler.MapVendorCategory)
	adminRoutes.POST("/unmap-vendor-category", adminMappingHandler.UnmapVendorCategory)
	adminRoutes.GET("/get-vendor-list", adminMappingHandler.GetVendorList)

	// Catalog domain (categories, products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/categories", categoryHandler.Create)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:id", categoryHandler.GetByID)
	catalogRoutes.PUT("/categories/:id", categoryHandler.Update)
	catalogRoutes.POST("/categories/:id/activate", categoryHandler.Activate)
	catalogRoutes.POST("/categories/:id/deactivate", categoryHandler.Deactivate)
	catalogRoutes.DELETE("/categories/:id", categoryHandler.Delete)
	catalogRoutes.POST("/categories/refresh-counts", categoryHandler.RefreshProductCounts)
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.POST("/products/:id/discontinue", productHandler.Discontinue)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	// Vendor domain (vendors, feed imports)
	vendorRoutes := router.NewDomainGroup("vendor", "/vendors")
	vendorRoutes.POST("", vendorHandler.Create)
	vendorRoutes.GET("", vendorHandler.List)
	vendorRoutes.GET("/:id", vendorHandler.GetByID)
	vendorRoutes.PUT("/:id", vendorHandler.Update)
	vendorRoutes.POST("/:id/activate", vendorHandler.Activate)
	vendorRoutes.POST("/:id/deactivate", vendorHandler.Deactivate)
	vendorRoutes.POST("/code/:code/feed", vendorHandler.ImportFeed)

	// Order domain
	orderRoutes := router.NewDomainGroup("order", "/orders")
	orderRoutes.POST("", orderHandler.Create)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.POST("/:id/apply-coupon", orderHandler.ApplyCoupon)
	orderRoutes.POST("/:id/confirm", orderHandler.Confirm)
	orderRoutes.POST("/:id/ship", orderHandler.Ship)
	orderRoutes.POST("/:id/deliver", orderHandler.Deliver)
	orderRoutes.POST("/:id/cancel", orderHandler.Cancel)

	// Promotion domain
	couponRoutes := router.NewDomainGroup("promotion", "/coupons")
	couponRoutes.POST("", couponHandler.Create)
	couponRoutes.GET("", couponHandler.List)
	couponRoutes.GET("/:id", couponHandler.GetByID)
	couponRoutes.POST("/:id/enable", couponHandler.Enable)
	couponRoutes.POST("/:id/disable", couponHandler.Disable)
	couponRoutes.DELETE("/:id", couponHandler.Delete)

	// Content domain (homepage sections)
	contentRoutes := router.NewDomainGroup("content", "/content")
	contentRoutes.POST("/sections", sectionHandler.Create)
	contentRoutes.GET("/sections", sectionHandler.List)
	contentRoutes.PUT("/sections/:id", sectionHandler.Update)
	contentRoutes.POST("/sections/reorder", sectionHandler.Reorder)
	contentRoutes.DELETE("/sections/:id", sectionHandler.Delete)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(adminRoutes).
		Register(catalogRoutes).
		Register(vendorRoutes).
		Register(orderRoutes).
		Register(couponRoutes).
		Register(contentRoutes).
		Register(systemRoutes)
	r.Setup()

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

// healthHandler reports liveness plus database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
