package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/adapters/outbox"
	"github.com/vendalog/erp/internal/adapters/postgres"
)

type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) outbox.Repository {
	return &OutboxRepository{pool: pool}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry *outbox.Entry) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO outbox (event_name, entity_name, event_data)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		entry.EventName, entry.EntityName, entry.EventData,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]*outbox.Entry, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, event_name, entity_name, event_data, created_at
		 FROM outbox
		 ORDER BY created_at ASC, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var entries []*outbox.Entry
	for rows.Next() {
		var entry outbox.Entry
		if err := rows.Scan(&entry.ID, &entry.EventName, &entry.EntityName, &entry.EventData, &entry.CreatedAt); err != nil {
			return nil, parseError(err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM outbox WHERE id = $1`, id); err != nil {
		return parseError(err)
	}

	return nil
}
