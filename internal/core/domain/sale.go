package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is immutable once committed. The unit price on each item is a
// snapshot taken under the product row lock, so later price edits never
// change historical totals.
type Sale struct {
	ID         ID
	CustomerID ID
	SaleDate   time.Time
	TotalPrice decimal.Decimal
	Items      []SaleItem
}

type SaleItem struct {
	ID          ID
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func NewSaleItem(productID ID, productName string, quantity int, unitPrice decimal.Decimal) SaleItem {
	return SaleItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return LineTotal(i.Quantity, i.UnitPrice)
}

// CalculateTotalPrice is the exact decimal sum of the line subtotals.
func CalculateTotalPrice(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func NewSale(customerID ID, items []SaleItem) *Sale {
	return &Sale{
		CustomerID: customerID,
		SaleDate:   time.Now(),
		TotalPrice: CalculateTotalPrice(items),
		Items:      items,
	}
}

type SaleCreatedEvent struct {
	SaleID     ID              `json:"sale_id"`
	CustomerID ID              `json:"customer_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	SaleDate   time.Time       `json:"sale_date"`
	ItemCount  int             `json:"item_count"`
}

func (e *SaleCreatedEvent) GetName() string {
	return "sale.created"
}

func (e *SaleCreatedEvent) GetEntityName() string {
	return "sale"
}

func NewSaleCreatedEvent(sale *Sale) *SaleCreatedEvent {
	return &SaleCreatedEvent{
		SaleID:     sale.ID,
		CustomerID: sale.CustomerID,
		TotalPrice: sale.TotalPrice,
		SaleDate:   sale.SaleDate,
		ItemCount:  len(sale.Items),
	}
}
