package port

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ManufacturerPort interface {
	Create(ctx context.Context, manufacturer *domain.Manufacturer) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Manufacturer, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Manufacturer, int64, error)
}
