package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vendalog/erp/internal/adapters/config"
	"github.com/vendalog/erp/internal/adapters/http"
	"github.com/vendalog/erp/internal/adapters/http/controllers"
	"github.com/vendalog/erp/internal/adapters/outbox"
	"github.com/vendalog/erp/internal/adapters/postgres"
	"github.com/vendalog/erp/internal/adapters/postgres/repository"
	"github.com/vendalog/erp/internal/adapters/rabbitmq"
	"github.com/vendalog/erp/internal/adapters/redis"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/service"
)

// @title       ERP API
// @version     1.0
// @description Inventory and sales management API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection and schema
	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to PostgreSQL", err, nil)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Fatal(ctx, "Failed to run schema migration", err, nil)
	}
	logger.Info(ctx, "Connected to PostgreSQL", nil)

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// repositories
	manufacturerRepository := repository.NewManufacturerRepository(pool)
	productRepository := repository.NewProductRepository(pool)
	customerRepository := repository.NewCustomerRepository(pool)
	outboxRepository := repository.NewOutboxRepository(pool)
	saleRepository := repository.NewSaleRepository(pool, outboxRepository)
	analyticsRepository := repository.NewAnalyticsRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	// caches and rate limiter
	saleCache := redis.NewCache[domain.Sale](redisClient, "sale-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.Sale]](redisClient, "idempotency-cache")
	kpiCache := redis.NewCache[domain.GlobalKPIs](redisClient, "kpi-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	manufacturerService := service.NewManufacturerService(manufacturerRepository)
	productService := service.NewProductService(productRepository, manufacturerService)
	customerService := service.NewCustomerService(customerRepository)
	stockGuard := service.NewStockGuard(productRepository)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)
	saleService := service.NewSaleService(saleRepository, stockGuard, customerService, saleCache, idempotencyService, txManager, cfg.Sales.TxTimeout)
	analyticsService := service.NewAnalyticsService(analyticsRepository, kpiCache)

	// controllers
	saleController := controllers.NewSaleController(saleService)
	productController := controllers.NewProductController(productService)
	customerController := controllers.NewCustomerController(customerService)
	manufacturerController := controllers.NewManufacturerController(manufacturerService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "postgres", Check: func(ctx context.Context) error { return pool.Ping(ctx) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, saleController, productController, customerController, manufacturerController, analyticsController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
