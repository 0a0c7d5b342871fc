package service

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

// Reservation is a stock decrement that becomes durable only when the
// enclosing transaction commits. Product is the row snapshot read under the
// lock, so its price is pinned for the rest of the transaction.
type Reservation struct {
	Product   *domain.Product
	Remaining int
}

// StockGuard serializes concurrent sales against the same product. Reserve
// must run inside a transaction; the exclusive row lock it takes guarantees
// the stock check and the decrement are atomic, so stock can never go
// negative regardless of interleaving.
type StockGuard struct {
	products port.ProductPort
}

func NewStockGuard(products port.ProductPort) *StockGuard {
	return &StockGuard{products: products}
}

func (g *StockGuard) Reserve(ctx context.Context, productID domain.ID, quantity int) (*Reservation, error) {
	product, err := g.products.LockForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.StockQuantity < quantity {
		return nil, serviceerrors.NewInsufficientStock(product.Name, quantity, product.StockQuantity)
	}

	remaining, err := g.products.DeductStock(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	return &Reservation{Product: product, Remaining: remaining}, nil
}
