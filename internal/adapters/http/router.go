package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendalog/erp/internal/adapters/config"
	"github.com/vendalog/erp/internal/adapters/http/controllers"
	"github.com/vendalog/erp/internal/adapters/http/middleware"
)

type Router struct {
	healthController       *controllers.HealthController
	saleController         *controllers.SaleController
	productController      *controllers.ProductController
	customerController     *controllers.CustomerController
	manufacturerController *controllers.ManufacturerController
	analyticsController    *controllers.AnalyticsController
	rateLimiter            middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	saleController *controllers.SaleController,
	productController *controllers.ProductController,
	customerController *controllers.CustomerController,
	manufacturerController *controllers.ManufacturerController,
	analyticsController *controllers.AnalyticsController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		saleController:         saleController,
		productController:      productController,
		customerController:     customerController,
		manufacturerController: manufacturerController,
		analyticsController:    analyticsController,
		rateLimiter:            rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.RequestID())
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/sales", middleware.RateLimit(rl, 15, 1*time.Minute), r.saleController.CreateSale)
		v1Group.GET("/sales", r.saleController.ListSales)
		v1Group.GET("/sales/:id", r.saleController.GetSaleByID)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.ListProducts)
		v1Group.GET("/products/:id", r.productController.GetProductByID)

		v1Group.POST("/customers", r.customerController.CreateCustomer)
		v1Group.GET("/customers", r.customerController.ListCustomers)
		v1Group.GET("/customers/:id", r.customerController.GetCustomerByID)

		v1Group.POST("/manufacturers", r.manufacturerController.CreateManufacturer)
		v1Group.GET("/manufacturers", r.manufacturerController.ListManufacturers)
		v1Group.GET("/manufacturers/:id", r.manufacturerController.GetManufacturerByID)

		analyticsGroup := v1Group.Group("/analytics")
		{
			analyticsGroup.GET("/top-customers", r.analyticsController.TopCustomers)
			analyticsGroup.GET("/most-sold-products", r.analyticsController.MostSoldProducts)
			analyticsGroup.GET("/manufacturer-ranking", r.analyticsController.ManufacturerRanking)
			analyticsGroup.GET("/kpis", r.analyticsController.GlobalKPIs)
			analyticsGroup.GET("/sales-by-category", r.analyticsController.SalesByCategory)
			analyticsGroup.GET("/low-stock-report", r.analyticsController.LowStockReport)
		}
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
