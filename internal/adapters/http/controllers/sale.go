package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vendalog/erp/internal/adapters/http/handlers"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/service"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type SaleController struct {
	saleService *service.SaleService
}

type SaleItemResponse struct {
	ID          domain.ID       `json:"id"`
	ProductID   domain.ID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID         domain.ID          `json:"id"`
	CustomerID domain.ID          `json:"customer_id"`
	SaleDate   time.Time          `json:"sale_date"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Items      []SaleItemResponse `json:"items"`
}

func NewSaleItemResponse(item domain.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal(),
	}
}

func NewSaleResponse(sale *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = NewSaleItemResponse(item)
	}
	return SaleResponse{
		ID:         sale.ID,
		CustomerID: sale.CustomerID,
		SaleDate:   sale.SaleDate,
		TotalPrice: sale.TotalPrice,
		Items:      items,
	}
}

func NewSaleController(saleService *service.SaleService) *SaleController {
	return &SaleController{saleService: saleService}
}

// CreateSale godoc
// @Summary     Create a sale
// @Description Creates a sale, deducting product stock atomically. Supports idempotent retries.
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                false "Idempotency key"
// @Param       request         body     dto.CreateSaleRequest true  "Sale data"
// @Success     201             {object} SaleResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Failure     503             {object} handlers.ErrorResponse
// @Router      /api/v1/sales [post]
func (sc *SaleController) CreateSale(c *gin.Context) {
	var request dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequest(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	sale, err := sc.saleService.CreateSale(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSaleResponse(sale))
}

// GetSaleByID godoc
// @Summary     Get sale by ID
// @Description Returns a single sale with its items
// @Tags        sales
// @Produce     json
// @Param       id  path     int true "Sale ID"
// @Success     200 {object} SaleResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/sales/{id} [get]
func (sc *SaleController) GetSaleByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	sale, err := sc.saleService.GetSaleByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSaleResponse(sale))
}

// ListSales godoc
// @Summary     List sales
// @Description Returns a paginated list of sales, optionally bounded by date
// @Tags        sales
// @Produce     json
// @Param       start_date query    string false "Lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query    string false "Upper bound (RFC3339 or YYYY-MM-DD)"
// @Param       limit      query    int    false "Page size"
// @Param       skip       query    int    false "Offset"
// @Success     200        {object} ListResponse[SaleResponse]
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/sales [get]
func (sc *SaleController) ListSales(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	startDate, err := parseOptionalDate(c, "start_date")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	endDate, err := parseOptionalDate(c, "end_date")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	sales, total, err := sc.saleService.ListSales(c.Request.Context(), dto.SaleFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		items[i] = NewSaleResponse(sale)
	}

	c.JSON(http.StatusOK, ListResponse[SaleResponse]{Total: total, Items: items})
}
