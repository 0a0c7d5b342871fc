package service

import (
	"sort"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/dto"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

const SALE_MAX_ITEMS = 100

type saleDraft struct {
	customerID domain.ID
	lines      []dto.SaleItem
}

// assembleSaleDraft validates the raw item list before any store access.
// Lines come out sorted by ascending product id: every sale locks product
// rows in the same order, so two sales with overlapping products cannot
// deadlock each other.
func assembleSaleDraft(request *dto.CreateSaleRequest) (*saleDraft, error) {
	if len(request.Items) == 0 {
		return nil, serviceerrors.NewEmptySale()
	}
	if len(request.Items) > SALE_MAX_ITEMS {
		return nil, serviceerrors.NewBusinessRule("sale items limit exceeded")
	}

	lines := make([]dto.SaleItem, len(request.Items))
	copy(lines, request.Items)

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, serviceerrors.NewInvalidQuantity(line.ProductID, line.Quantity)
		}
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})

	return &saleDraft{customerID: request.CustomerID, lines: lines}, nil
}
