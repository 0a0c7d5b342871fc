package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestID_Valid(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want bool
	}{
		{"positive id", 1, true},
		{"large id", 9223372036854775807, true},
		{"zero", 0, false},
		{"negative", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Valid(); got != tt.want {
				t.Errorf("ID(%d).Valid() = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestMoneyFromCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"whole value", 2900, "29"},
		{"fractional value", 2999, "29.99"},
		{"single cent", 1, "0.01"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoneyFromCents(tt.cents); got.String() != tt.want {
				t.Errorf("MoneyFromCents(%d) = %s, want %s", tt.cents, got, tt.want)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    decimal.Decimal
		want     string
	}{
		{"single unit", 1, MoneyFromCents(1500), "15"},
		{"multiple units", 3, MoneyFromCents(1500), "45"},
		{"fractional price stays exact", 3, MoneyFromCents(1999), "59.97"},
		{"zero quantity", 0, MoneyFromCents(1500), "0"},
		{"zero price", 5, decimal.Zero, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineTotal(tt.quantity, tt.price); got.String() != tt.want {
				t.Errorf("LineTotal(%d, %s) = %s, want %s", tt.quantity, tt.price, got, tt.want)
			}
		})
	}
}
