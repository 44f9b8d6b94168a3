package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"pizzaria-storefront/app/controller"
	"pizzaria-storefront/app/router"
	"pizzaria-storefront/auth"
	"pizzaria-storefront/cache"
	"pizzaria-storefront/checkout"
	"pizzaria-storefront/config"
	"pizzaria-storefront/db"
	"pizzaria-storefront/pricing"
	"pizzaria-storefront/repository"
	"pizzaria-storefront/service"
	"pizzaria-storefront/session"
)

// App holds the wired application and the resources to release on shutdown
type App struct {
	Handler  http.Handler
	Sessions *session.Store

	db    *sql.DB
	cache cache.Cache
	cart  *controller.CartController
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	engine, err := pricing.NewEngine(cfg.PricingConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pricing engine: %w", err)
	}

	channel, err := checkout.NewWhatsAppChannel(cfg.WhatsAppNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize order channel: %w", err)
	}

	a := &App{cache: cache.NopCache{}}

	// Catalog storage: Postgres when configured, in-memory otherwise
	var products repository.ProductRepositoryInterface
	var additionals repository.AdditionalRepositoryInterface
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.EnsureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
		a.db = conn
		products = repository.NewProductRepository(conn)
		additionals = repository.NewAdditionalRepository(conn)
	} else {
		log.Printf("⚠️  No database configured, catalog is kept in memory")
		memoryProducts := repository.NewMemoryProductRepository()
		products = memoryProducts
		additionals = repository.NewMemoryAdditionalRepository(memoryProducts)
	}

	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, "storefront:", cfg.CacheTTL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, menu cache disabled: %v", err)
		} else {
			a.cache = redisCache
			log.Printf("✓ Menu cache enabled at %s (ttl=%s)", cfg.RedisAddr, cfg.CacheTTL)
		}
	}

	catalogService := service.NewCatalogService(products, additionals, a.cache)
	menuService := service.NewMenuService(catalogService, cfg.StoreName, cfg.ChromePath)

	var uploader controller.ImageUploader
	if cfg.GoogleCredentials != "" {
		driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentials, cfg.DriveUploadFolderID)
		if err != nil {
			a.Close()
			return nil, err
		}
		uploader = service.NewUploadService(driveService)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, image upload disabled")
	}

	tokens := auth.NewJWTManager(auth.JWTConfig{SecretKey: cfg.JWTSecret})
	if cfg.AdminPasswordHash == "" {
		log.Printf("⚠️  ADMIN_PASSWORD_HASH not set, admin login disabled")
	}
	authenticator := auth.NewAuthenticator(cfg.AdminUser, cfg.AdminPasswordHash, tokens)

	a.Sessions = session.NewStore(session.Dependencies{
		Pricer:    engine,
		Channel:   channel,
		StoreName: cfg.StoreName,
	}, cfg.SessionTTL)

	a.cart = controller.NewCartController(catalogService, engine)
	controllers := &router.Controllers{
		Menu:       controller.NewMenuController(catalogService, menuService),
		Cart:       a.cart,
		Checkout:   controller.NewCheckoutController(),
		Product:    controller.NewProductController(catalogService),
		Additional: controller.NewAdditionalController(catalogService),
		Upload:     controller.NewUploadController(uploader, cfg.MaxUploadBytes),
		Auth:       controller.NewAuthController(authenticator),
	}

	a.Handler = router.SetupRoutes(controllers, a.Sessions, tokens)
	return a, nil
}

// CloseStreams ends the open cart event streams so the server can drain
func (a *App) CloseStreams() {
	a.cart.CloseStreams()
}

// Close releases the database and cache connections
func (a *App) Close() error {
	var firstErr error
	if err := a.cache.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close cache: %w", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close database: %w", err)
		}
		log.Printf("Database connection closed")
	}
	return firstErr
}
