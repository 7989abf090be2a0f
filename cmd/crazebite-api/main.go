package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crazebite/crazebite-api/internal/api/handlers"
	"github.com/crazebite/crazebite-api/internal/api/middleware"
	"github.com/crazebite/crazebite-api/internal/catalog"
	"github.com/crazebite/crazebite-api/internal/config"
	"github.com/crazebite/crazebite-api/internal/coupon"
	"github.com/crazebite/crazebite-api/internal/health"
	"github.com/crazebite/crazebite-api/internal/metrics"
	"github.com/crazebite/crazebite-api/internal/pricing"
	repository "github.com/crazebite/crazebite-api/internal/repositories"
	service "github.com/crazebite/crazebite-api/internal/services"
	"github.com/crazebite/crazebite-api/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracer, err := telemetry.Init(context.Background(), "crazebite-api", cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}
	cancelPing()

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Catalog: built-in data unless a catalog file is configured
	foodCatalog := catalog.Default()
	if cfg.Catalog.Path != "" {
		foodCatalog, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			slog.Error("❌ Error loading catalog file", "error", err.Error())
			os.Exit(1)
		}
	}

	// Coupons: built-in CRAZE10 unless codes are configured
	couponTable := coupon.DefaultTable()
	if len(cfg.Coupons.Codes) > 0 {
		couponTable, err = coupon.NewTable(cfg.Coupons.Codes)
		if err != nil {
			slog.Error("❌ Error building coupon table", "error", err.Error())
			os.Exit(1)
		}
	}

	deliveryFee, err := decimal.NewFromString(cfg.Pricing.DeliveryFee)
	if err != nil {
		slog.Error("❌ Invalid delivery fee", "error", err.Error())
		os.Exit(1)
	}

	pricingEngine := pricing.NewEngine(deliveryFee)
	cartRepo := repository.NewCartRepo(redisClient, cfg.Cart.TTL)
	catalogService := service.NewCatalogService(foodCatalog)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(cartRepo, catalogService, couponTable, pricingEngine)
	cartHandler := handlers.NewCartHandler(cartService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("catalog initialized", slog.String("env", cfg.Env), slog.Int("items", foodCatalog.Len()))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/catalog/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/catalog/categories/{key}/items", catalogHandler.ListItemsByCategory())
	routerMux.HandleFunc("GET /api/v1/catalog/items", catalogHandler.SearchItems())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/items", cartHandler.AddItem())
	routerMux.HandleFunc("POST /api/v1/carts/items/{id}/increment", cartHandler.IncrementItem())
	routerMux.HandleFunc("POST /api/v1/carts/items/{id}/decrement", cartHandler.DecrementItem())
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/carts/coupon", cartHandler.ApplyCoupon())
	routerMux.HandleFunc("PUT /api/v1/carts/address", cartHandler.UpdateAddress())
	routerMux.HandleFunc("GET /api/v1/carts/summary", cartHandler.Summary())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "crazebite-api")

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

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
