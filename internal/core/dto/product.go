package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendalog/erp/internal/core/domain"
)

type CreateProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	StockQuantity  int             `json:"stock_quantity"`
	ManufacturerID domain.ID       `json:"manufacturer_id" binding:"required"`
}
