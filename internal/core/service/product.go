package service

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type ProductService struct {
	productRepository   port.ProductPort
	manufacturerService *ManufacturerService
}

func NewProductService(productRepository port.ProductPort, manufacturerService *ManufacturerService) *ProductService {
	return &ProductService{
		productRepository:   productRepository,
		manufacturerService: manufacturerService,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	if !request.Price.IsPositive() {
		return nil, serviceerrors.NewInvalidPrice(request.Price.String())
	}
	if request.StockQuantity < 0 {
		return nil, serviceerrors.NewNegativeStock(request.Name, request.StockQuantity)
	}
	if err := s.manufacturerService.Exists(ctx, request.ManufacturerID); err != nil {
		return nil, err
	}

	product := domain.NewProduct(
		request.Name,
		request.Category,
		request.Price,
		request.StockQuantity,
		request.ManufacturerID,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{
		"product_id": product.ID,
		"price":      product.Price.String(),
		"stock":      product.StockQuantity,
	})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	return s.productRepository.List(ctx, limit, offset)
}
