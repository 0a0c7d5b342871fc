package port

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SalePort interface {
	// CreateWithOutbox persists the sale aggregate (sale plus all items)
	// and a sale.created outbox entry in the ambient transaction. IDs and
	// the sale date are assigned by the store and written back.
	CreateWithOutbox(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]*domain.Sale, int64, error)
}
