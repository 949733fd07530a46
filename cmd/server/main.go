package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/storekit/commerce-api/internal/config"
	"github.com/storekit/commerce-api/internal/handlers"
	"github.com/storekit/commerce-api/internal/middleware"
	"github.com/storekit/commerce-api/internal/repository"
	"github.com/storekit/commerce-api/internal/repository/mongodb"
	"github.com/storekit/commerce-api/internal/service"
	"github.com/storekit/commerce-api/internal/validation"
	"github.com/storekit/commerce-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application and blocks until shutdown. Returning an
// error instead of exiting keeps deferred cleanup (Mongo disconnect)
// on every failure path.
func run() error {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting commerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"storage", cfg.Storage.Backend,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories for the configured backend
	var (
		customerRepo repository.CustomerRepository
		productRepo  repository.ProductRepository
		orderRepo    repository.OrderRepository
	)

	switch cfg.Storage.Backend {
	case config.StorageMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		client, err := mongodb.Connect(ctx, cfg.Storage.MongoURI)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect from mongodb", "error", err)
			}
		}()

		db := client.Database(cfg.Storage.MongoDatabase)
		customers := mongodb.NewCustomerRepository(db)
		if err := customers.EnsureIndexes(context.Background()); err != nil {
			return err
		}

		customerRepo = customers
		productRepo = mongodb.NewProductRepository(db)
		orderRepo = mongodb.NewOrderRepository(db)
	default:
		customerRepo = repository.NewInMemoryCustomerRepository()
		productRepo = repository.NewInMemoryProductRepository()
		orderRepo = repository.NewInMemoryOrderRepository()
	}

	// Initialize services
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(customerRepo, productRepo, orderRepo)

	// Initialize request validator and handlers
	validate := validation.New()
	healthHandler := handlers.NewHealthHandler(cfg.Storage.Backend, log)
	customerHandler := handlers.NewCustomerHandler(customerService, validate, log)
	productHandler := handlers.NewProductHandler(productService, validate, log)
	orderHandler := handlers.NewOrderHandler(orderService, validate, log)

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
		AllowedOrigins:   []string{"*"},
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
		// Catalog reads
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/order/{orderId}", orderHandler.GetOrder)

		// Mutating endpoints require an API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Post("/customer", customerHandler.CreateCustomer)
			r.Post("/product", productHandler.CreateProduct)
			r.Post("/order", orderHandler.CreateOrder)
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

	// Start server in a goroutine, reporting startup failure to run
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
