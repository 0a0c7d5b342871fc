package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
	"github.com/vendalog/erp/internal/core/utils"
)

const saleCacheTTL = 15 * time.Minute

type SaleService struct {
	saleRepository  port.SalePort
	stockGuard      *StockGuard
	customerService *CustomerService
	saleCache       port.CachePort[domain.Sale]
	idempotency     *IdempotencyService[domain.Sale]
	txManager       port.TransactionManager
	txTimeout       time.Duration
}

func NewSaleService(
	saleRepository port.SalePort,
	stockGuard *StockGuard,
	customerService *CustomerService,
	saleCache port.CachePort[domain.Sale],
	idempotency *IdempotencyService[domain.Sale],
	txManager port.TransactionManager,
	txTimeout time.Duration,
) *SaleService {
	return &SaleService{
		saleRepository:  saleRepository,
		stockGuard:      stockGuard,
		customerService: customerService,
		saleCache:       saleCache,
		idempotency:     idempotency,
		txManager:       txManager,
		txTimeout:       txTimeout,
	}
}

func (s *SaleService) getCacheKey(saleID domain.ID) string {
	return fmt.Sprintf("sale:%d", saleID)
}

// processSale is the transaction orchestrator. Validation and the customer
// lookup happen before the transaction opens, so invalid requests abort
// without touching any row. Inside the transaction each draft line is
// reserved in ascending product-id order, the sale aggregate is persisted
// together with its outbox entry, and everything commits as one unit; the
// first failure rolls the whole thing back, including decrements already
// applied to earlier lines.
func (s *SaleService) processSale(ctx context.Context, request *dto.CreateSaleRequest) (*domain.Sale, error) {
	draft, err := assembleSaleDraft(request)
	if err != nil {
		return nil, err
	}

	if err := s.customerService.Exists(ctx, request.CustomerID); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var sale *domain.Sale
	err = s.txManager.WithTransaction(txCtx, func(txCtx context.Context) error {
		items := make([]domain.SaleItem, 0, len(draft.lines))
		for _, line := range draft.lines {
			reservation, err := s.stockGuard.Reserve(txCtx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			items = append(items, domain.NewSaleItem(
				line.ProductID,
				reservation.Product.Name,
				line.Quantity,
				reservation.Product.Price,
			))
		}

		sale = domain.NewSale(draft.customerID, items)
		return s.saleRepository.CreateWithOutbox(txCtx, sale)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn(ctx, "transaction: sale timed out", map[string]any{
				"customer_id": request.CustomerID,
				"timeout":     s.txTimeout.String(),
			})
			return nil, serviceerrors.NewSaleTimeout(err)
		}
		logger.Error(ctx, "transaction: create sale failed", err, map[string]any{
			"customer_id": request.CustomerID,
		})
		return nil, err
	}

	logger.Info(ctx, "Sale created", map[string]any{
		"sale_id":     sale.ID,
		"total_price": sale.TotalPrice.String(),
		"items":       len(sale.Items),
	})
	return sale, nil
}

// CreateSale processes a sale, optionally under an idempotency key. Without
// a key every submission creates a new sale.
func (s *SaleService) CreateSale(ctx context.Context, idempotencyKey string, request *dto.CreateSaleRequest) (*domain.Sale, error) {
	if idempotencyKey == "" {
		return s.processSale(ctx, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	sale, err := s.processSale(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, sale)

	return sale, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID domain.ID) (*domain.Sale, error) {
	cached, err := s.saleCache.Get(ctx, s.getCacheKey(saleID))
	if err != nil {
		logger.Error(ctx, "cache: get sale failed", err, map[string]any{
			"sale_id": saleID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	sale, err := s.saleRepository.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := s.saleCache.Set(ctx, s.getCacheKey(saleID), sale, saleCacheTTL); err != nil {
		logger.Error(ctx, "cache: set sale failed", err, map[string]any{
			"sale_id": saleID,
		})
	}

	return sale, nil
}

func (s *SaleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]*domain.Sale, int64, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, 0, serviceerrors.NewInvalidRequest("end_date must not be before start_date")
	}
	return s.saleRepository.List(ctx, filter)
}
