package domain

import (
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	before := time.Now()
	p := NewProduct("Widget", "hardware", MoneyFromCents(4999), 25, 3)
	after := time.Now()

	if p.Name != "Widget" {
		t.Fatalf("expected name 'Widget', got %q", p.Name)
	}
	if p.Category != "hardware" {
		t.Fatalf("expected category 'hardware', got %q", p.Category)
	}
	if !p.Price.Equal(MoneyFromCents(4999)) {
		t.Fatalf("expected price 49.99, got %s", p.Price)
	}
	if p.StockQuantity != 25 {
		t.Fatalf("expected stock 25, got %d", p.StockQuantity)
	}
	if p.ManufacturerID != 3 {
		t.Fatalf("expected manufacturer 3, got %d", p.ManufacturerID)
	}
	if p.ID != 0 {
		t.Fatalf("expected zero ID, got %d", p.ID)
	}
	if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v not in expected range [%v, %v]", p.CreatedAt, before, after)
	}
}

func TestNewProduct_DefaultCategory(t *testing.T) {
	p := NewProduct("Widget", "", MoneyFromCents(4999), 25, 3)

	if p.Category != DefaultCategory {
		t.Fatalf("expected category %q, got %q", DefaultCategory, p.Category)
	}
}
