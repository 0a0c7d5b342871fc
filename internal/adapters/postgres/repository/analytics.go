package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/adapters/postgres"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/port"
)

// AnalyticsRepository answers reporting queries straight from the sales
// tables. Ranking ties are broken by ascending id so results are stable
// across runs.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) port.AnalyticsPort {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) TopCustomers(ctx context.Context, limit int) ([]*domain.TopCustomer, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT c.id, c.name, COALESCE(SUM(s.total_price), 0) AS total_spent, COUNT(s.id) AS order_count
		 FROM customers c
		 JOIN sales s ON s.customer_id = c.id
		 GROUP BY c.id, c.name
		 ORDER BY total_spent DESC, c.id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var customers []*domain.TopCustomer
	for rows.Next() {
		var (
			c     domain.TopCustomer
			spent pgtype.Numeric
		)
		if err := rows.Scan(&c.CustomerID, &c.CustomerName, &spent, &c.OrderCount); err != nil {
			return nil, parseError(err)
		}
		c.TotalSpent = fromNumeric(spent)
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return customers, nil
}

func (r *AnalyticsRepository) MostSoldProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT p.id, p.name,
		        SUM(si.quantity) AS total_quantity_sold,
		        SUM(si.quantity * si.unit_price) AS total_revenue
		 FROM products p
		 JOIN sale_items si ON si.product_id = p.id
		 GROUP BY p.id, p.name
		 ORDER BY total_quantity_sold DESC, p.id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var products []*domain.ProductSales
	for rows.Next() {
		var (
			p       domain.ProductSales
			revenue pgtype.Numeric
		)
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.TotalQuantitySold, &revenue); err != nil {
			return nil, parseError(err)
		}
		p.TotalRevenue = fromNumeric(revenue)
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return products, nil
}

func (r *AnalyticsRepository) ManufacturerRanking(ctx context.Context) ([]*domain.ManufacturerRanking, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT m.id, m.name,
		        COALESCE(SUM(si.quantity * si.unit_price), 0) AS total_sales_value,
		        COALESCE(SUM(si.quantity), 0) AS products_sold_count
		 FROM manufacturers m
		 LEFT JOIN products p ON p.manufacturer_id = m.id
		 LEFT JOIN sale_items si ON si.product_id = p.id
		 GROUP BY m.id, m.name
		 ORDER BY total_sales_value DESC, m.id ASC`,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var ranking []*domain.ManufacturerRanking
	for rows.Next() {
		var (
			m     domain.ManufacturerRanking
			value pgtype.Numeric
		)
		if err := rows.Scan(&m.ManufacturerID, &m.ManufacturerName, &value, &m.ProductsSoldCount); err != nil {
			return nil, parseError(err)
		}
		m.TotalSalesValue = fromNumeric(value)
		ranking = append(ranking, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return ranking, nil
}

func (r *AnalyticsRepository) SalesTotals(ctx context.Context) (*domain.GlobalKPIs, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	var (
		kpis    domain.GlobalKPIs
		revenue pgtype.Numeric
	)
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM sales`,
	).Scan(&revenue, &kpis.TotalOrders)
	if err != nil {
		return nil, parseError(err)
	}
	kpis.TotalRevenue = fromNumeric(revenue)

	return &kpis, nil
}

func (r *AnalyticsRepository) SalesByCategory(ctx context.Context) ([]*domain.CategorySales, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT p.category, SUM(si.quantity) AS total_sold
		 FROM sale_items si
		 JOIN products p ON p.id = si.product_id
		 GROUP BY p.category
		 ORDER BY total_sold DESC, p.category ASC`,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var categories []*domain.CategorySales
	for rows.Next() {
		var c domain.CategorySales
		if err := rows.Scan(&c.Category, &c.TotalSold); err != nil {
			return nil, parseError(err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return categories, nil
}

func (r *AnalyticsRepository) LowStockProducts(ctx context.Context, threshold int) ([]*domain.Product, error) {
	q := postgres.QuerierFrom(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE stock_quantity <= $1
		 ORDER BY stock_quantity ASC, id ASC`,
		threshold,
	)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	return collectProducts(rows)
}
