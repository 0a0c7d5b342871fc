package dto

import (
	"time"

	"github.com/vendalog/erp/internal/core/domain"
)

type SaleItem struct {
	ProductID domain.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CreateSaleRequest struct {
	CustomerID domain.ID  `json:"customer_id"`
	Items      []SaleItem `json:"items"`
}

// SaleFilter bounds the paginated sale listing. Nil dates mean unbounded.
type SaleFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}
