package service

import (
	"context"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/logger"
	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type CustomerService struct {
	customerRepository port.CustomerPort
}

func NewCustomerService(customerRepository port.CustomerPort) *CustomerService {
	return &CustomerService{customerRepository: customerRepository}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, request *dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.NewCustomer(request.Name, request.Email, request.Document)

	if err := s.customerRepository.Create(ctx, customer); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Customer created", map[string]any{"customer_id": customer.ID})
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	return s.customerRepository.GetByID(ctx, id)
}

// Exists returns a not-found service error when the customer is missing,
// so the sale orchestrator can abort before opening its transaction.
func (s *CustomerService) Exists(ctx context.Context, id domain.ID) error {
	ok, err := s.customerRepository.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return serviceerrors.NewResourceNotFound("Customer", id)
	}
	return nil
}

func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]*domain.Customer, int64, error) {
	return s.customerRepository.List(ctx, limit, offset)
}
