package domain

import "github.com/shopspring/decimal"

// ID is a database-assigned surrogate key. Zero means not persisted yet.
type ID int64

func (id ID) Valid() bool {
	return id > 0
}

// All monetary values are decimal fixed-point. Binary floating point is
// never used for prices or totals.

func MoneyFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// LineTotal is quantity times unit price, exact.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

type Event interface {
	GetName() string
	GetEntityName() string
}
