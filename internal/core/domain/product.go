package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCategory = "general"

type Product struct {
	ID             ID
	Name           string
	Category       string
	Price          decimal.Decimal
	StockQuantity  int
	ManufacturerID ID
	CreatedAt      time.Time
}

func NewProduct(name, category string, price decimal.Decimal, stock int, manufacturerID ID) *Product {
	if category == "" {
		category = DefaultCategory
	}
	return &Product{
		Name:           name,
		Category:       category,
		Price:          price,
		StockQuantity:  stock,
		ManufacturerID: manufacturerID,
		CreatedAt:      time.Now(),
	}
}
