package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/adapters/postgres"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) port.ProductPort {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO products (name, category, price, stock_quantity, manufacturer_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		product.Name, product.Category, toNumeric(product.Price), product.StockQuantity, product.ManufacturerID,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return parseError(err)
	}

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		price pgtype.Numeric
	)
	err := row.Scan(&p.ID, &p.Name, &p.Category, &price, &p.StockQuantity, &p.ManufacturerID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Price = fromNumeric(price)
	return &p, nil
}

const productColumns = `id, name, category, price, stock_quantity, manufacturer_id, created_at`

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	product, err := scanProduct(q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceerrors.NewResourceNotFound("Product", id)
		}
		return nil, parseError(err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, parseError(err)
	}

	rows, err := q.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, parseError(err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// LockForUpdate serializes concurrent sales on the same product: the
// returned snapshot (stock and price) cannot change under the caller until
// the transaction ends.
func (r *ProductRepository) LockForUpdate(ctx context.Context, id domain.ID) (*domain.Product, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	product, err := scanProduct(q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceerrors.NewResourceNotFound("Product", id)
		}
		return nil, parseError(err)
	}

	return product, nil
}

func (r *ProductRepository) DeductStock(ctx context.Context, id domain.ID, quantity int) (int, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var remaining int
	err := q.QueryRow(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $2
		 WHERE id = $1
		 RETURNING stock_quantity`,
		id, quantity,
	).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, serviceerrors.NewResourceNotFound("Product", id)
		}
		return 0, parseError(err)
	}

	return remaining, nil
}

func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			price pgtype.Numeric
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &p.StockQuantity, &p.ManufacturerID, &p.CreatedAt); err != nil {
			return nil, parseError(err)
		}
		p.Price = fromNumeric(price)
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}
	return products, nil
}
