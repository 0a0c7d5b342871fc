package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/port/mock"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

func setupProductService(t *testing.T) (*ProductService, *mock.MockProductPort, *mock.MockManufacturerPort) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductPort(ctrl)
	manufacturerRepo := mock.NewMockManufacturerPort(ctrl)
	svc := NewProductService(productRepo, NewManufacturerService(manufacturerRepo))
	return svc, productRepo, manufacturerRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	manufacturerID := domain.ID(3)

	validRequest := &dto.CreateProductRequest{
		Name:           "Widget",
		Category:       "tools",
		Price:          decimal.RequireFromString("19.90"),
		StockQuantity:  100,
		ManufacturerID: manufacturerID,
	}

	t.Run("success", func(t *testing.T) {
		svc, productRepo, manufacturerRepo := setupProductService(t)

		manufacturerRepo.EXPECT().
			Exists(gomock.Any(), manufacturerID).
			Return(true, nil)

		productRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product *domain.Product) error {
				product.ID = domain.ID(1)
				return nil
			})

		product, err := svc.CreateProduct(context.Background(), validRequest)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Category != "tools" {
			t.Fatalf("expected category tools, got %q", product.Category)
		}
	})

	t.Run("empty category defaults", func(t *testing.T) {
		svc, productRepo, manufacturerRepo := setupProductService(t)

		manufacturerRepo.EXPECT().
			Exists(gomock.Any(), manufacturerID).
			Return(true, nil)

		productRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		request := *validRequest
		request.Category = ""

		product, err := svc.CreateProduct(context.Background(), &request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Category != domain.DefaultCategory {
			t.Fatalf("expected default category %q, got %q", domain.DefaultCategory, product.Category)
		}
	})

	t.Run("zero price rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		request := *validRequest
		request.Price = decimal.Zero

		_, err := svc.CreateProduct(context.Background(), &request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeInvalidPrice {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeInvalidPrice, serviceerrors.CodeOf(err))
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		request := *validRequest
		request.Price = decimal.RequireFromString("-5.00")

		_, err := svc.CreateProduct(context.Background(), &request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindBusinessRule) {
			t.Fatalf("expected KindBusinessRule, got %v", err)
		}
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		request := *validRequest
		request.StockQuantity = -1

		_, err := svc.CreateProduct(context.Background(), &request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeNegativeStock {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeNegativeStock, serviceerrors.CodeOf(err))
		}
	})

	t.Run("unknown manufacturer rejected", func(t *testing.T) {
		svc, _, manufacturerRepo := setupProductService(t)

		manufacturerRepo.EXPECT().
			Exists(gomock.Any(), manufacturerID).
			Return(false, nil)

		_, err := svc.CreateProduct(context.Background(), validRequest)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestStockGuard_Reserve(t *testing.T) {
	productID := domain.ID(42)

	t.Run("reserves and returns remaining stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		productRepo := mock.NewMockProductPort(ctrl)
		guard := NewStockGuard(productRepo)

		product := &domain.Product{
			ID:            productID,
			Name:          "Widget",
			Price:         decimal.RequireFromString("10.00"),
			StockQuantity: 8,
		}

		productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		productRepo.EXPECT().
			DeductStock(gomock.Any(), productID, 3).
			Return(5, nil)

		reservation, err := guard.Reserve(context.Background(), productID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.Remaining != 5 {
			t.Fatalf("expected remaining 5, got %d", reservation.Remaining)
		}
		if reservation.Product.ID != productID {
			t.Fatalf("expected product snapshot, got %+v", reservation.Product)
		}
	})

	t.Run("exact stock is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		productRepo := mock.NewMockProductPort(ctrl)
		guard := NewStockGuard(productRepo)

		product := &domain.Product{ID: productID, Name: "Widget", StockQuantity: 3}

		productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		productRepo.EXPECT().
			DeductStock(gomock.Any(), productID, 3).
			Return(0, nil)

		reservation, err := guard.Reserve(context.Background(), productID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.Remaining != 0 {
			t.Fatalf("expected remaining 0, got %d", reservation.Remaining)
		}
	})

	t.Run("insufficient stock never deducts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		productRepo := mock.NewMockProductPort(ctrl)
		guard := NewStockGuard(productRepo)

		product := &domain.Product{ID: productID, Name: "Widget", StockQuantity: 2}

		productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(product, nil)

		_, err := guard.Reserve(context.Background(), productID, 3)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeInsufficientStock {
			t.Fatalf("expected code %s, got %s", serviceerrors.CodeInsufficientStock, serviceerrors.CodeOf(err))
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		productRepo := mock.NewMockProductPort(ctrl)
		guard := NewStockGuard(productRepo)

		productRepo.EXPECT().
			LockForUpdate(gomock.Any(), productID).
			Return(nil, serviceerrors.NewResourceNotFound("Product", productID))

		_, err := guard.Reserve(context.Background(), productID, 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
