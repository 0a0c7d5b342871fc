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

type ManufacturerRepository struct {
	pool *pgxpool.Pool
}

func NewManufacturerRepository(pool *pgxpool.Pool) port.ManufacturerPort {
	return &ManufacturerRepository{pool: pool}
}

func (r *ManufacturerRepository) Create(ctx context.Context, manufacturer *domain.Manufacturer) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO manufacturers (name, contact_email) VALUES ($1, $2)
		 RETURNING id, created_at`,
		manufacturer.Name, manufacturer.ContactEmail,
	).Scan(&manufacturer.ID, &manufacturer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "manufacturers_contact_email_key") {
			return serviceerrors.NewDuplicateResource("Manufacturer", "contact_email", manufacturer.ContactEmail)
		}
		return parseError(err)
	}

	return nil
}

func (r *ManufacturerRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Manufacturer, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var m domain.Manufacturer
	err := q.QueryRow(ctx,
		`SELECT id, name, contact_email, created_at FROM manufacturers WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.ContactEmail, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceerrors.NewResourceNotFound("Manufacturer", id)
		}
		return nil, parseError(err)
	}

	return &m, nil
}

func (r *ManufacturerRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM manufacturers WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, parseError(err)
	}
	return exists, nil
}

func (r *ManufacturerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Manufacturer, int64, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM manufacturers`).Scan(&total); err != nil {
		return nil, 0, parseError(err)
	}

	rows, err := q.Query(ctx,
		`SELECT id, name, contact_email, created_at FROM manufacturers
		 ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, parseError(err)
	}
	defer rows.Close()

	var manufacturers []*domain.Manufacturer
	for rows.Next() {
		var m domain.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.ContactEmail, &m.CreatedAt); err != nil {
			return nil, 0, parseError(err)
		}
		manufacturers = append(manufacturers, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, parseError(err)
	}

	return manufacturers, total, nil
}
