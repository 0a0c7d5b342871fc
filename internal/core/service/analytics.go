package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

const (
	defaultTopCustomersLimit = 5
	defaultMostSoldLimit     = 10
	kpiCacheKey              = "analytics:kpis"
	kpiCacheTTL              = 30 * time.Second
)

// AnalyticsService serves the read-only reporting queries. It never writes;
// all queries run against committed state. The KPI response is cached
// briefly because dashboards poll it.
type AnalyticsService struct {
	analytics port.AnalyticsPort
	kpiCache  port.CachePort[domain.GlobalKPIs]
}

func NewAnalyticsService(analytics port.AnalyticsPort, kpiCache port.CachePort[domain.GlobalKPIs]) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, kpiCache: kpiCache}
}

func (s *AnalyticsService) TopCustomers(ctx context.Context, limit int) ([]*domain.TopCustomer, error) {
	if limit <= 0 {
		limit = defaultTopCustomersLimit
	}
	return s.analytics.TopCustomers(ctx, limit)
}

func (s *AnalyticsService) MostSoldProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error) {
	if limit <= 0 {
		limit = defaultMostSoldLimit
	}
	return s.analytics.MostSoldProducts(ctx, limit)
}

func (s *AnalyticsService) ManufacturerRanking(ctx context.Context) ([]*domain.ManufacturerRanking, error) {
	return s.analytics.ManufacturerRanking(ctx)
}

// GlobalKPIs returns total revenue, order count and average ticket. The
// average is zero when there are no orders, never a division error.
func (s *AnalyticsService) GlobalKPIs(ctx context.Context) (*domain.GlobalKPIs, error) {
	cached, err := s.kpiCache.Get(ctx, kpiCacheKey)
	if err != nil {
		logger.Error(ctx, "cache: get kpis failed", err, nil)
	}
	if cached != nil {
		return cached, nil
	}

	kpis, err := s.analytics.SalesTotals(ctx)
	if err != nil {
		return nil, err
	}

	if kpis.TotalOrders > 0 {
		kpis.AverageTicket = kpis.TotalRevenue.DivRound(decimal.NewFromInt(kpis.TotalOrders), 2)
	} else {
		kpis.AverageTicket = decimal.Zero
	}

	if err := s.kpiCache.Set(ctx, kpiCacheKey, kpis, kpiCacheTTL); err != nil {
		logger.Error(ctx, "cache: set kpis failed", err, nil)
	}

	return kpis, nil
}

func (s *AnalyticsService) SalesByCategory(ctx context.Context) ([]*domain.CategorySales, error) {
	return s.analytics.SalesByCategory(ctx)
}

func (s *AnalyticsService) LowStockReport(ctx context.Context, threshold int) ([]*domain.Product, error) {
	if threshold < 0 {
		return nil, serviceerrors.NewInvalidRequest("threshold must not be negative")
	}
	return s.analytics.LowStockProducts(ctx, threshold)
}
