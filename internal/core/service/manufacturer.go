package service

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type ManufacturerService struct {
	manufacturerRepository port.ManufacturerPort
}

func NewManufacturerService(manufacturerRepository port.ManufacturerPort) *ManufacturerService {
	return &ManufacturerService{manufacturerRepository: manufacturerRepository}
}

func (s *ManufacturerService) CreateManufacturer(ctx context.Context, request *dto.CreateManufacturerRequest) (*domain.Manufacturer, error) {
	manufacturer := domain.NewManufacturer(request.Name, request.ContactEmail)

	if err := s.manufacturerRepository.Create(ctx, manufacturer); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Manufacturer created", map[string]any{"manufacturer_id": manufacturer.ID})
	return manufacturer, nil
}

func (s *ManufacturerService) GetByID(ctx context.Context, id domain.ID) (*domain.Manufacturer, error) {
	return s.manufacturerRepository.GetByID(ctx, id)
}

func (s *ManufacturerService) Exists(ctx context.Context, id domain.ID) error {
	ok, err := s.manufacturerRepository.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return serviceerrors.NewResourceNotFound("Manufacturer", id)
	}
	return nil
}

func (s *ManufacturerService) List(ctx context.Context, limit, offset int) ([]*domain.Manufacturer, int64, error) {
	return s.manufacturerRepository.List(ctx, limit, offset)
}
