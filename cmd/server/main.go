package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting counter pos server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"vat_rate", cfg.Pricing.VATRate.String(),
		"service_rate", cfg.Pricing.ServiceRate.String(),
		"delivery_fee", cfg.Pricing.DeliveryFee.StringFixed(2),
		"currency", cfg.Currency,
	)

	// Initialize repositories
	productRepo, err := newProductRepository(context.Background(), cfg.Catalog, log)
	if err != nil {
		log.Error("failed to load catalog", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}
	products, _ := productRepo.GetAll(context.Background())

	// Initialize services
	productService := service.NewProductService(productRepo)
	sessionService := service.NewSessionService(productRepo, cfg.Pricing, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, len(products))
	productHandler := handlers.NewProductHandler(productService, log)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.Currency, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/category", productHandler.ListCategories)

		// Order session endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Route("/session", sessionHandler.Routes)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newProductRepository serves the built-in menu unless a catalog source is configured
func newProductRepository(ctx context.Context, cfg config.CatalogConfig, log *slog.Logger) (*repository.InMemoryProductRepository, error) {
	if cfg.Source == "" {
		log.Info("using built-in catalog")
		return repository.NewInMemoryProductRepository(), nil
	}

	log.Info("loading catalog...", "source", cfg.Source)
	products, err := catalog.NewLoader().Load(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}

	log.Info("catalog loaded successfully",
		"products", len(products),
		"categories", len(catalog.Categories(products)),
	)
	return repository.NewInMemoryProductRepositoryFrom(products), nil
}
