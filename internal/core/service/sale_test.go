package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/port/mock"
	"github.com/vendalog/erp/internal/core/serviceerrors"
	"github.com/vendalog/erp/internal/core/utils"
)

type saleMocks struct {
	saleRepo     *mock.MockSalePort
	productRepo  *mock.MockProductPort
	customerRepo *mock.MockCustomerPort
	saleCache    *mock.MockCachePort[domain.Sale]
	idemCache    *mock.MockCachePort[IdempotencyEntry[domain.Sale]]
	txManager    *mock.MockTransactionManager
}

func setupSaleService(t *testing.T) (*SaleService, *saleMocks) {
	ctrl := gomock.NewController(t)

	saleRepo := mock.NewMockSalePort(ctrl)
	productRepo := mock.NewMockProductPort(ctrl)
	customerRepo := mock.NewMockCustomerPort(ctrl)
	saleCache := mock.NewMockCachePort[domain.Sale](ctrl)
	idemCache := mock.NewMockCachePort[IdempotencyEntry[domain.Sale]](ctrl)
	txManager := mock.NewMockTransactionManager(ctrl)

	customerSvc := NewCustomerService(customerRepo)
	stockGuard := NewStockGuard(productRepo)
	idemSvc := NewIdempotencyService[domain.Sale](idemCache, 15*time.Minute, 50*time.Millisecond, 500*time.Millisecond)

	svc := NewSaleService(saleRepo, stockGuard, customerSvc, saleCache, idemSvc, txManager, 2*time.Second)

	return svc, &saleMocks{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleCache:    saleCache,
		idemCache:    idemCache,
		txManager:    txManager,
	}
}

func runInTx(m *saleMocks) *gomock.Call {
	return m.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

// --- CreateSale (processSale) ---

func TestSaleService_CreateSale(t *testing.T) {
	customerID := domain.ID(7)
	productID := domain.ID(42)

	validRequest := &dto.CreateSaleRequest{
		CustomerID: customerID,
		Items: []dto.SaleItem{
			{ProductID: productID, Quantity: 5},
		},
	}

	product := &domain.Product{
		ID:            productID,
		Name:          "Widget",
		Price:         decimal.RequireFromString("50.00"),
		StockQuantity: 10,
	}

	t.Run("success without idempotency key", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		runInTx(m)

		m.productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		m.productRepo.EXPECT().
			DeductStock(gomock.Any(), productID, 5).
			Return(5, nil)

		m.saleRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
				sale.ID = domain.ID(1)
				return nil
			})

		sale, err := svc.CreateSale(context.Background(), "", validRequest)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale == nil {
			t.Fatal("expected sale, got nil")
		}
		if sale.CustomerID != customerID {
			t.Fatalf("expected customer id %d, got %d", customerID, sale.CustomerID)
		}
		if len(sale.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(sale.Items))
		}
		expectedTotal := decimal.RequireFromString("250.00")
		if !sale.TotalPrice.Equal(expectedTotal) {
			t.Fatalf("expected total %s, got %s", expectedTotal, sale.TotalPrice)
		}
		if sale.Items[0].ProductName != "Widget" {
			t.Fatalf("expected snapshot of product name, got %q", sale.Items[0].ProductName)
		}
	})

	t.Run("empty sale touches no repository", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		_, err := svc.CreateSale(context.Background(), "", &dto.CreateSaleRequest{
			CustomerID: customerID,
			Items:      []dto.SaleItem{},
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeEmptySale {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeEmptySale, serviceerrors.CodeOf(err))
		}
	})

	t.Run("non-positive quantity rejected before any store access", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		_, err := svc.CreateSale(context.Background(), "", &dto.CreateSaleRequest{
			CustomerID: customerID,
			Items:      []dto.SaleItem{{ProductID: productID, Quantity: 0}},
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeInvalidQuantity {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeInvalidQuantity, serviceerrors.CodeOf(err))
		}
	})

	t.Run("too many items", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		items := make([]dto.SaleItem, SALE_MAX_ITEMS+1)
		for i := range items {
			items[i] = dto.SaleItem{ProductID: productID, Quantity: 1}
		}

		_, err := svc.CreateSale(context.Background(), "", &dto.CreateSaleRequest{
			CustomerID: customerID,
			Items:      items,
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindBusinessRule) {
			t.Fatalf("expected KindBusinessRule, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(false, nil)

		_, err := svc.CreateSale(context.Background(), "", validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("insufficient stock aborts the transaction", func(t *testing.T) {
		svc, m := setupSaleService(t)

		lowStock := &domain.Product{
			ID:            productID,
			Name:          "Widget",
			Price:         decimal.RequireFromString("50.00"),
			StockQuantity: 5,
		}
		request := &dto.CreateSaleRequest{
			CustomerID: customerID,
			Items:      []dto.SaleItem{{ProductID: productID, Quantity: 10}},
		}

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		runInTx(m)

		m.productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(lowStock, nil)

		_, err := svc.CreateSale(context.Background(), "", request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var svcErr *serviceerrors.ServiceError
		if !errors.As(err, &svcErr) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
		if svcErr.Code != serviceerrors.CodeInsufficientStock {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeInsufficientStock, svcErr.Code)
		}
		if svcErr.Extra["requested_quantity"] != 10 {
			t.Fatalf("expected requested_quantity 10, got %v", svcErr.Extra["requested_quantity"])
		}
		if svcErr.Extra["available_quantity"] != 5 {
			t.Fatalf("expected available_quantity 5, got %v", svcErr.Extra["available_quantity"])
		}
	})

	t.Run("products locked in ascending id order", func(t *testing.T) {
		svc, m := setupSaleService(t)

		first := &domain.Product{ID: 3, Name: "A", Price: decimal.RequireFromString("1.00"), StockQuantity: 10}
		second := &domain.Product{ID: 9, Name: "B", Price: decimal.RequireFromString("2.00"), StockQuantity: 10}

		request := &dto.CreateSaleRequest{
			CustomerID: customerID,
			Items: []dto.SaleItem{
				{ProductID: 9, Quantity: 1},
				{ProductID: 3, Quantity: 1},
			},
		}

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		runInTx(m)

		gomock.InOrder(
			m.productRepo.EXPECT().LockForUpdate(gomock.Any(), domain.ID(3)).Return(first, nil),
			m.productRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(3), 1).Return(9, nil),
			m.productRepo.EXPECT().LockForUpdate(gomock.Any(), domain.ID(9)).Return(second, nil),
			m.productRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(9), 1).Return(9, nil),
		)

		m.saleRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			Return(nil)

		sale, err := svc.CreateSale(context.Background(), "", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		expectedTotal := decimal.RequireFromString("3.00")
		if !sale.TotalPrice.Equal(expectedTotal) {
			t.Fatalf("expected total %s, got %s", expectedTotal, sale.TotalPrice)
		}
	})

	t.Run("transaction deadline maps to sale timeout", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		m.txManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			Return(context.DeadlineExceeded)

		_, err := svc.CreateSale(context.Background(), "", validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnavailable) {
			t.Fatalf("expected KindUnavailable, got %v", err)
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeSaleTimeout {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeSaleTimeout, serviceerrors.CodeOf(err))
		}
	})

	t.Run("repository failure rolls back and propagates", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		runInTx(m)

		m.productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		m.productRepo.EXPECT().
			DeductStock(gomock.Any(), productID, 5).
			Return(5, nil)

		m.saleRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			Return(serviceerrors.NewDatabaseError(errors.New("insert failed")))

		_, err := svc.CreateSale(context.Background(), "", validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeDatabase {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeDatabase, serviceerrors.CodeOf(err))
		}
	})
}

// --- CreateSale with idempotency key ---

func TestSaleService_CreateSale_Idempotency(t *testing.T) {
	customerID := domain.ID(7)
	productID := domain.ID(42)

	validRequest := &dto.CreateSaleRequest{
		CustomerID: customerID,
		Items: []dto.SaleItem{
			{ProductID: productID, Quantity: 5},
		},
	}

	t.Run("duplicate key returns stored result without processing", func(t *testing.T) {
		svc, m := setupSaleService(t)
		hash := utils.HashJSON(validRequest)
		storedSale := &domain.Sale{ID: 99, CustomerID: customerID}

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "key-1", gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.idemCache.EXPECT().
			Get(gomock.Any(), "key-1").
			Return(&IdempotencyEntry[domain.Sale]{
				Status:      IdempotencyCompleted,
				PayloadHash: hash,
				Result:      storedSale,
			}, nil)

		sale, err := svc.CreateSale(context.Background(), "key-1", validRequest)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale.ID != 99 {
			t.Fatalf("expected stored sale 99, got %d", sale.ID)
		}
	})

	t.Run("same key with different payload rejected", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "key-1", gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.idemCache.EXPECT().
			Get(gomock.Any(), "key-1").
			Return(&IdempotencyEntry[domain.Sale]{
				Status:      IdempotencyCompleted,
				PayloadHash: "other-hash",
				Result:      &domain.Sale{ID: 99},
			}, nil)

		_, err := svc.CreateSale(context.Background(), "key-1", validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindBusinessRule) {
			t.Fatalf("expected KindBusinessRule, got %v", err)
		}
	})

	t.Run("failed attempt releases the key", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "key-1", gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(false, nil)

		m.idemCache.EXPECT().
			Del(gomock.Any(), "key-1").
			Return(nil)

		_, err := svc.CreateSale(context.Background(), "key-1", validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("successful attempt stores the result", func(t *testing.T) {
		svc, m := setupSaleService(t)
		product := &domain.Product{
			ID:            productID,
			Name:          "Widget",
			Price:         decimal.RequireFromString("50.00"),
			StockQuantity: 10,
		}

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "key-1", gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.customerRepo.EXPECT().
			Exists(gomock.Any(), customerID).
			Return(true, nil)

		runInTx(m)

		m.productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		m.productRepo.EXPECT().
			DeductStock(gomock.Any(), productID, 5).
			Return(5, nil)

		m.saleRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			Return(nil)

		m.idemCache.EXPECT().
			Set(gomock.Any(), "key-1", gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.CreateSale(context.Background(), "key-1", validRequest)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

// --- GetSaleByID ---

func TestSaleService_GetSaleByID(t *testing.T) {
	saleID := domain.ID(12)

	t.Run("cache hit", func(t *testing.T) {
		svc, m := setupSaleService(t)
		cached := &domain.Sale{ID: saleID}

		m.saleCache.EXPECT().
			Get(gomock.Any(), "sale:12").
			Return(cached, nil)

		sale, err := svc.GetSaleByID(context.Background(), saleID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale.ID != saleID {
			t.Fatalf("expected sale id %d, got %d", saleID, sale.ID)
		}
	})

	t.Run("cache miss - fetches from repo and caches", func(t *testing.T) {
		svc, m := setupSaleService(t)
		repoSale := &domain.Sale{ID: saleID}

		m.saleCache.EXPECT().
			Get(gomock.Any(), "sale:12").
			Return(nil, nil)

		m.saleRepo.EXPECT().
			GetByID(gomock.Any(), saleID).
			Return(repoSale, nil)

		m.saleCache.EXPECT().
			Set(gomock.Any(), "sale:12", repoSale, saleCacheTTL).
			Return(nil)

		sale, err := svc.GetSaleByID(context.Background(), saleID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale.ID != saleID {
			t.Fatalf("expected sale id %d, got %d", saleID, sale.ID)
		}
	})

	t.Run("cache error - still fetches from repo", func(t *testing.T) {
		svc, m := setupSaleService(t)
		repoSale := &domain.Sale{ID: saleID}

		m.saleCache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis error"))

		m.saleRepo.EXPECT().
			GetByID(gomock.Any(), saleID).
			Return(repoSale, nil)

		m.saleCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		sale, err := svc.GetSaleByID(context.Background(), saleID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale == nil {
			t.Fatal("expected sale, got nil")
		}
	})

	t.Run("repo not found", func(t *testing.T) {
		svc, m := setupSaleService(t)

		m.saleCache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		m.saleRepo.EXPECT().
			GetByID(gomock.Any(), saleID).
			Return(nil, serviceerrors.NewResourceNotFound("Sale", saleID))

		_, err := svc.GetSaleByID(context.Background(), saleID)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

// --- ListSales ---

func TestSaleService_ListSales(t *testing.T) {
	t.Run("rejects inverted date range", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(-24 * time.Hour)

		_, _, err := svc.ListSales(context.Background(), dto.SaleFilter{
			StartDate: &start,
			EndDate:   &end,
			Limit:     10,
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		svc, m := setupSaleService(t)
		filter := dto.SaleFilter{Limit: 10}

		m.saleRepo.EXPECT().
			List(gomock.Any(), filter).
			Return([]*domain.Sale{{ID: 1}, {ID: 2}}, int64(2), nil)

		sales, total, err := svc.ListSales(context.Background(), filter)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 2 || len(sales) != 2 {
			t.Fatalf("expected 2 sales, got %d (total %d)", len(sales), total)
		}
	})
}
