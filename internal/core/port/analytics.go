package port

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// AnalyticsPort is read-only: every method queries committed state and
// never takes locks.
type AnalyticsPort interface {
	TopCustomers(ctx context.Context, limit int) ([]*domain.TopCustomer, error)
	MostSoldProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error)
	ManufacturerRanking(ctx context.Context) ([]*domain.ManufacturerRanking, error)
	SalesTotals(ctx context.Context) (*domain.GlobalKPIs, error)
	SalesByCategory(ctx context.Context) ([]*domain.CategorySales, error)
	LowStockProducts(ctx context.Context, threshold int) ([]*domain.Product, error)
}
