package domain

import "github.com/shopspring/decimal"

// Report rows produced by the aggregation queries. All of them read
// committed state only; ties are broken by ascending entity id so the
// rankings are deterministic.

type TopCustomer struct {
	CustomerID   ID              `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	OrderCount   int64           `json:"order_count"`
}

type ProductSales struct {
	ProductID         ID              `json:"product_id"`
	ProductName       string          `json:"product_name"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

type ManufacturerRanking struct {
	ManufacturerID    ID              `json:"manufacturer_id"`
	ManufacturerName  string          `json:"manufacturer_name"`
	TotalSalesValue   decimal.Decimal `json:"total_sales_value"`
	ProductsSoldCount int64           `json:"products_sold_count"`
}

type GlobalKPIs struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int64           `json:"total_orders"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

type CategorySales struct {
	Category  string `json:"category"`
	TotalSold int64  `json:"total_sold"`
}
