package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/adapters/outbox"
	"github.com/vendalog/erp/internal/adapters/postgres"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type SaleRepository struct {
	pool   *pgxpool.Pool
	outbox outbox.Repository
}

func NewSaleRepository(pool *pgxpool.Pool, outboxRepository outbox.Repository) port.SalePort {
	return &SaleRepository{pool: pool, outbox: outboxRepository}
}

// CreateWithOutbox persists the sale, its items and the sale.created outbox
// entry in the caller's transaction, so either all of them land or none do.
func (r *SaleRepository) CreateWithOutbox(ctx context.Context, sale *domain.Sale) error {
	q := postgres.QuerierFrom(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO sales (customer_id, total_price)
		 VALUES ($1, $2)
		 RETURNING id, sale_date`,
		sale.CustomerID, toNumeric(sale.TotalPrice),
	).Scan(&sale.ID, &sale.SaleDate)
	if err != nil {
		return parseError(err)
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		err := q.QueryRow(ctx,
			`INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			sale.ID, item.ProductID, item.ProductName, item.Quantity, toNumeric(item.UnitPrice),
		).Scan(&item.ID)
		if err != nil {
			return parseError(err)
		}
	}

	event := domain.NewSaleCreatedEvent(sale)
	eventData, err := json.Marshal(event)
	if err != nil {
		return serviceerrors.NewDatabaseError(fmt.Errorf("marshal sale event: %w", err))
	}

	entry := &outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	}
	if err := r.outbox.Insert(ctx, entry); err != nil {
		return err
	}

	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Sale, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var (
		sale  domain.Sale
		total pgtype.Numeric
	)
	err := q.QueryRow(ctx,
		`SELECT id, customer_id, sale_date, total_price FROM sales WHERE id = $1`, id,
	).Scan(&sale.ID, &sale.CustomerID, &sale.SaleDate, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceerrors.NewResourceNotFound("Sale", id)
		}
		return nil, parseError(err)
	}
	sale.TotalPrice = fromNumeric(total)

	items, err := r.itemsForSales(ctx, q, []int64{int64(sale.ID)})
	if err != nil {
		return nil, err
	}
	sale.Items = items[sale.ID]

	return &sale, nil
}

func (r *SaleRepository) List(ctx context.Context, filter dto.SaleFilter) ([]*domain.Sale, int64, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	where := ` WHERE ($1::timestamptz IS NULL OR sale_date >= $1)
	             AND ($2::timestamptz IS NULL OR sale_date <= $2)`

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`+where, filter.StartDate, filter.EndDate).Scan(&total)
	if err != nil {
		return nil, 0, parseError(err)
	}

	rows, err := q.Query(ctx,
		`SELECT id, customer_id, sale_date, total_price FROM sales`+where+
			` ORDER BY sale_date DESC, id DESC LIMIT $3 OFFSET $4`,
		filter.StartDate, filter.EndDate, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, parseError(err)
	}
	defer rows.Close()

	var (
		sales   []*domain.Sale
		saleIDs []int64
	)
	for rows.Next() {
		var (
			sale     domain.Sale
			totalPay pgtype.Numeric
		)
		if err := rows.Scan(&sale.ID, &sale.CustomerID, &sale.SaleDate, &totalPay); err != nil {
			return nil, 0, parseError(err)
		}
		sale.TotalPrice = fromNumeric(totalPay)
		sales = append(sales, &sale)
		saleIDs = append(saleIDs, int64(sale.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, parseError(err)
	}

	if len(saleIDs) > 0 {
		items, err := r.itemsForSales(ctx, q, saleIDs)
		if err != nil {
			return nil, 0, err
		}
		for _, sale := range sales {
			sale.Items = items[sale.ID]
		}
	}

	return sales, total, nil
}

func (r *SaleRepository) itemsForSales(ctx context.Context, q postgres.Querier, saleIDs []int64) (map[domain.ID][]domain.SaleItem, error) {
	rows, err := q.Query(ctx,
		`SELECT id, sale_id, product_id, product_name, quantity, unit_price
		 FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`,
		saleIDs,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	items := make(map[domain.ID][]domain.SaleItem, len(saleIDs))
	for rows.Next() {
		var (
			item   domain.SaleItem
			saleID domain.ID
			price  pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &saleID, &item.ProductID, &item.ProductName, &item.Quantity, &price); err != nil {
			return nil, parseError(err)
		}
		item.UnitPrice = fromNumeric(price)
		items[saleID] = append(items[saleID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return items, nil
}
