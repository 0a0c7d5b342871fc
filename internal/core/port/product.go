package port

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error)

	// LockForUpdate reads the product row under an exclusive row lock.
	// Must run inside a transaction; the lock pins both the stock quantity
	// and the price until commit or rollback.
	LockForUpdate(ctx context.Context, id domain.ID) (*domain.Product, error)

	// DeductStock decrements stock and returns the remaining quantity.
	// Callers hold the row lock from LockForUpdate, so the decrement can
	// never drive stock below zero.
	DeductStock(ctx context.Context, id domain.ID, quantity int) (int, error)
}
