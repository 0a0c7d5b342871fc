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

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID             domain.ID       `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity"`
	ManufacturerID domain.ID       `json:"manufacturer_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Category:       product.Category,
		Price:          product.Price,
		StockQuantity:  product.StockQuantity,
		ManufacturerID: product.ManufacturerID,
		CreatedAt:      product.CreatedAt,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product with an initial stock level
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequest(err.Error()))
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetProductByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// ListProducts godoc
// @Summary     List products
// @Description Returns a paginated list of products
// @Tags        products
// @Produce     json
// @Param       limit query    int false "Page size"
// @Param       skip  query    int false "Offset"
// @Success     200   {object} ListResponse[ProductResponse]
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	products, total, err := pc.productService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, product := range products {
		items[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, ListResponse[ProductResponse]{Total: total, Items: items})
}
