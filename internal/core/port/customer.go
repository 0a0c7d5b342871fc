package port

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CustomerPort interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, int64, error)
}
