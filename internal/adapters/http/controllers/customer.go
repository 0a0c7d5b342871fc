package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendalog/erp/internal/adapters/http/handlers"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/service"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type CustomerController struct {
	customerService *service.CustomerService
}

type CustomerResponse struct {
	ID        domain.ID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  *string   `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Document:  customer.Document,
		CreatedAt: customer.CreatedAt,
	}
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// CreateCustomer godoc
// @Summary     Create a customer
// @Description Creates a new customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateCustomerRequest true "Customer data"
// @Success     201     {object} CustomerResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/customers [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequest(err.Error()))
		return
	}
	customer, err := cc.customerService.CreateCustomer(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCustomerResponse(customer))
}

// GetCustomerByID godoc
// @Summary     Get customer by ID
// @Description Returns a single customer by its ID
// @Tags        customers
// @Produce     json
// @Param       id  path     int true "Customer ID"
// @Success     200 {object} CustomerResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id} [get]
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	customer, err := cc.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCustomerResponse(customer))
}

// ListCustomers godoc
// @Summary     List customers
// @Description Returns a paginated list of customers
// @Tags        customers
// @Produce     json
// @Param       limit query    int false "Page size"
// @Param       skip  query    int false "Offset"
// @Success     200   {object} ListResponse[CustomerResponse]
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/customers [get]
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	customers, total, err := cc.customerService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		items[i] = NewCustomerResponse(customer)
	}

	c.JSON(http.StatusOK, ListResponse[CustomerResponse]{Total: total, Items: items})
}
