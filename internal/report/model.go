package report

import "github.com/shopspring/decimal"

// SalesRow aggregates all order lines of one product.
type SalesRow struct {
	ProductID    *int64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
