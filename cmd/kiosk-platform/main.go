package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trystore/kiosk-platform/internal/api/handlers"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	"github.com/trystore/kiosk-platform/internal/cache"
	"github.com/trystore/kiosk-platform/internal/config"
	"github.com/trystore/kiosk-platform/internal/health"
	"github.com/trystore/kiosk-platform/internal/metrics"
	repository "github.com/trystore/kiosk-platform/internal/repositories"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/internal/storage"
	"github.com/trystore/kiosk-platform/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	rateLimits := repository.NewRateLimitRepo(redisClient, cfg)
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	imageStore, err := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.PublicURL)
	if err != nil {
		slog.Error("❌ Error preparing the uploads directory", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimits, jwtKey, cfg.Security.SessionTTL)
	shopService := service.NewShopService(repos.Shop, repos.User, emailClient)
	productService := service.NewProductService(repos.Product, productCache, imageStore)
	onboardingService := service.NewOnboardingService(shopService, userService)

	userHandler := handlers.NewUserHandler(userService, &cfg.Security)
	productHandler := handlers.NewProductHandler(productService, userService)
	shopHandler := handlers.NewShopHandler(shopService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	kioskHandler := handlers.NewKioskHandler(productService, shopService)
	adminHandler := handlers.NewAdminHandler(shopService, productService, userService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey, cfg.Security.CookieName)
	gate := middleware.NewGate(authMiddleware, userService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error building the health checker", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Session API
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/users/logout", userHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("GET /api/v1/users/onboarding-status", authMiddleware.Authenticate(userHandler.OnboardingStatus()))

	// Catalog admin API
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/products/images", authMiddleware.Authenticate(productHandler.UploadImage()))

	// Shop API
	routerMux.HandleFunc("GET /api/v1/shops/me", authMiddleware.Authenticate(shopHandler.GetShop()))
	routerMux.HandleFunc("PUT /api/v1/shops/me", authMiddleware.Authenticate(shopHandler.UpdateShop()))
	routerMux.HandleFunc("GET /api/v1/shops/me/stats", authMiddleware.Authenticate(shopHandler.Stats()))

	// Onboarding wizard API
	routerMux.HandleFunc("GET /api/v1/onboarding", authMiddleware.Authenticate(onboardingHandler.State()))
	routerMux.HandleFunc("POST /api/v1/onboarding/next", authMiddleware.Authenticate(onboardingHandler.Next()))
	routerMux.HandleFunc("POST /api/v1/onboarding/back", authMiddleware.Authenticate(onboardingHandler.Back()))
	routerMux.HandleFunc("POST /api/v1/onboarding/complete", authMiddleware.Authenticate(onboardingHandler.Complete()))

	// Public kiosk
	routerMux.HandleFunc("GET /kiosk/products", kioskHandler.ListProducts())
	routerMux.HandleFunc("GET /kiosk/products/{id}", kioskHandler.GetProduct())
	routerMux.HandleFunc("GET /kiosk/meta", kioskHandler.Meta())

	// Admin pages, every one behind the gate
	routerMux.Handle("GET /admin", gate.Protect(adminHandler.Dashboard()))
	routerMux.Handle("GET /admin/products", gate.Protect(adminHandler.ProductsPage()))
	routerMux.Handle("GET /admin/onboarding", gate.Protect(adminHandler.OnboardingPage(onboardingService)))
	routerMux.Handle("GET /admin/login", gate.Protect(adminHandler.LoginPage()))
	routerMux.Handle("GET /admin/register", gate.Protect(adminHandler.RegisterPage()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET "+cfg.Uploads.PublicURL+"/", http.StripPrefix(cfg.Uploads.PublicURL+"/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
