package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/adapters/postgres"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) port.CustomerPort {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO customers (name, email, document)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		customer.Name, customer.Email, customer.Document,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "customers_email_key") {
			return serviceerrors.NewDuplicateResource("Customer", "email", customer.Email)
		}
		if isUniqueViolation(err, "customers_document_key") {
			document := ""
			if customer.Document != nil {
				document = *customer.Document
			}
			return serviceerrors.NewDuplicateResource("Customer", "document", document)
		}
		return parseError(err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var c domain.Customer
	err := q.QueryRow(ctx,
		`SELECT id, name, email, document, created_at FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Document, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceerrors.NewResourceNotFound("Customer", id)
		}
		return nil, parseError(err)
	}

	return &c, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, parseError(err)
	}

	return exists, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, int64, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, parseError(err)
	}

	rows, err := q.Query(ctx,
		`SELECT id, name, email, document, created_at FROM customers ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, parseError(err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Document, &c.CreatedAt); err != nil {
			return nil, 0, parseError(err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, parseError(err)
	}

	return customers, total, nil
}
