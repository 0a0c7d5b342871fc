package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendalog/erp/internal/adapters/http/handlers"
	"github.com/vendalog/erp/internal/core/service"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type AnalyticsController struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func parseOptionalInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serviceerrors.NewInvalidRequest("Invalid " + name)
	}
	return value, nil
}

// TopCustomers godoc
// @Summary     Top customers
// @Description Returns the customers ranked by total spend
// @Tags        analytics
// @Produce     json
// @Param       limit query   int false "Number of customers"
// @Success     200   {array} domain.TopCustomer
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/top-customers [get]
func (ac *AnalyticsController) TopCustomers(c *gin.Context) {
	limit, err := parseOptionalInt(c, "limit", 0)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	customers, err := ac.analyticsService.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// MostSoldProducts godoc
// @Summary     Most sold products
// @Description Returns the products ranked by units sold
// @Tags        analytics
// @Produce     json
// @Param       limit query   int false "Number of products"
// @Success     200   {array} domain.ProductSales
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/most-sold-products [get]
func (ac *AnalyticsController) MostSoldProducts(c *gin.Context) {
	limit, err := parseOptionalInt(c, "limit", 0)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	products, err := ac.analyticsService.MostSoldProducts(c.Request.Context(), limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ManufacturerRanking godoc
// @Summary     Manufacturer ranking
// @Description Ranks manufacturers by total sales value of their products
// @Tags        analytics
// @Produce     json
// @Success     200 {array} domain.ManufacturerRanking
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/manufacturer-ranking [get]
func (ac *AnalyticsController) ManufacturerRanking(c *gin.Context) {
	ranking, err := ac.analyticsService.ManufacturerRanking(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// GlobalKPIs godoc
// @Summary     Global sales KPIs
// @Description Returns total revenue, order count and average ticket
// @Tags        analytics
// @Produce     json
// @Success     200 {object} domain.GlobalKPIs
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/kpis [get]
func (ac *AnalyticsController) GlobalKPIs(c *gin.Context) {
	kpis, err := ac.analyticsService.GlobalKPIs(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// SalesByCategory godoc
// @Summary     Sales by category
// @Description Returns units sold grouped by product category
// @Tags        analytics
// @Produce     json
// @Success     200 {array} domain.CategorySales
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/sales-by-category [get]
func (ac *AnalyticsController) SalesByCategory(c *gin.Context) {
	categories, err := ac.analyticsService.SalesByCategory(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// LowStockReport godoc
// @Summary     Low stock report
// @Description Lists products at or below the stock threshold
// @Tags        analytics
// @Produce     json
// @Param       threshold query   int false "Stock threshold" default(10)
// @Success     200       {array} ProductResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/analytics/low-stock-report [get]
func (ac *AnalyticsController) LowStockReport(c *gin.Context) {
	threshold, err := parseOptionalInt(c, "threshold", 10)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	products, err := ac.analyticsService.LowStockReport(c.Request.Context(), threshold)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}
