// internal/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Barcode     *string         `json:"barcode"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
	BatchNumber *string         `json:"batch_number"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Margin is the per-unit profit: price minus cost.
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// MarginPercent is margin / cost * 100, defined as 0 when cost is 0.
func (p *Product) MarginPercent() decimal.Decimal {
	if p.Cost.IsZero() {
		return decimal.Zero
	}
	return p.Margin().Div(p.Cost).Mul(decimal.NewFromInt(100))
}

// IsExpired reports whether the product has an expiry date strictly before
// now. Expiry is always derived at evaluation time, never stored.
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(now)
}

// StockStatus returns the product's current classification.
func (p *Product) StockStatus() StockStatus {
	return ClassifyStock(p.Stock, p.MinStock)
}

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Label returns the display form used on the dashboard and in exports.
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOutOfStock:
		return "Out of Stock"
	case StockStatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// ClassifyStock maps (stock, minStock) to exactly one of the three stock
// statuses. The statuses partition all inputs: stock == 0 is out of stock,
// 0 < stock <= minStock is low stock, everything else is in stock.
func ClassifyStock(stock, minStock int) StockStatus {
	if stock == 0 {
		return StockStatusOutOfStock
	}
	if stock > 0 && stock <= minStock {
		return StockStatusLowStock
	}
	return StockStatusInStock
}

// CategoryAll is a filter sentinel, never a stored category.
const CategoryAll = "All"

// Categories is the closed set of storable product categories.
var Categories = []string{
	"Alcoholic",
	"Non-Alcoholic",
	"Snacks",
	"Rice",
	"Bakery",
	"Frozen",
	"Personal Care",
	"Canned Goods",
}

// IsValidCategory reports whether c is a storable category (the "All"
// sentinel is not).
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// IsValidFilterCategory reports whether c is usable as a query filter:
// any storable category, or the "All" sentinel.
func IsValidFilterCategory(c string) bool {
	return c == CategoryAll || IsValidCategory(c)
}

type InventoryStats struct {
	TotalProducts int             `json:"total_products"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	ExpiredCount  int             `json:"expired_count"`
}
