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

type ManufacturerController struct {
	manufacturerService *service.ManufacturerService
}

type ManufacturerResponse struct {
	ID           domain.ID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewManufacturerResponse(manufacturer *domain.Manufacturer) ManufacturerResponse {
	return ManufacturerResponse{
		ID:           manufacturer.ID,
		Name:         manufacturer.Name,
		ContactEmail: manufacturer.ContactEmail,
		CreatedAt:    manufacturer.CreatedAt,
	}
}

func NewManufacturerController(manufacturerService *service.ManufacturerService) *ManufacturerController {
	return &ManufacturerController{manufacturerService: manufacturerService}
}

// CreateManufacturer godoc
// @Summary     Create a manufacturer
// @Description Creates a new manufacturer
// @Tags        manufacturers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateManufacturerRequest true "Manufacturer data"
// @Success     201     {object} ManufacturerResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/manufacturers [post]
func (mc *ManufacturerController) CreateManufacturer(c *gin.Context) {
	var request dto.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequest(err.Error()))
		return
	}
	manufacturer, err := mc.manufacturerService.CreateManufacturer(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewManufacturerResponse(manufacturer))
}

// GetManufacturerByID godoc
// @Summary     Get manufacturer by ID
// @Description Returns a single manufacturer by its ID
// @Tags        manufacturers
// @Produce     json
// @Param       id  path     int true "Manufacturer ID"
// @Success     200 {object} ManufacturerResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/manufacturers/{id} [get]
func (mc *ManufacturerController) GetManufacturerByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	manufacturer, err := mc.manufacturerService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewManufacturerResponse(manufacturer))
}

// ListManufacturers godoc
// @Summary     List manufacturers
// @Description Returns a paginated list of manufacturers
// @Tags        manufacturers
// @Produce     json
// @Param       limit query    int false "Page size"
// @Param       skip  query    int false "Offset"
// @Success     200   {object} ListResponse[ManufacturerResponse]
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/manufacturers [get]
func (mc *ManufacturerController) ListManufacturers(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	manufacturers, total, err := mc.manufacturerService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]ManufacturerResponse, len(manufacturers))
	for i, manufacturer := range manufacturers {
		items[i] = NewManufacturerResponse(manufacturer)
	}

	c.JSON(http.StatusOK, ListResponse[ManufacturerResponse]{Total: total, Items: items})
}
