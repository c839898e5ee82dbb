// internal/models/product_test.go
package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     StockStatus
	}{
		{"zero stock is out of stock", 0, 10, StockStatusOutOfStock},
		{"zero stock with zero threshold", 0, 0, StockStatusOutOfStock},
		{"at threshold is low stock", 10, 10, StockStatusLowStock},
		{"below threshold is low stock", 1, 10, StockStatusLowStock},
		{"above threshold is in stock", 11, 10, StockStatusInStock},
		{"positive stock with zero threshold", 5, 0, StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.stock, tt.minStock))
		})
	}
}

func TestClassifyStockPartitions(t *testing.T) {
	// Every (stock, minStock) pair must land in exactly one status.
	seen := map[StockStatus]bool{}
	for stock := 0; stock <= 25; stock++ {
		for minStock := 0; minStock <= 25; minStock++ {
			status := ClassifyStock(stock, minStock)
			switch status {
			case StockStatusOutOfStock:
				assert.Equal(t, 0, stock)
			case StockStatusLowStock:
				assert.Greater(t, stock, 0)
				assert.LessOrEqual(t, stock, minStock)
			case StockStatusInStock:
				assert.Greater(t, stock, minStock)
			default:
				t.Fatalf("unknown status %q", status)
			}
			seen[status] = true
		}
	}
	assert.Len(t, seen, 3)
}

func TestStockStatusLabel(t *testing.T) {
	assert.Equal(t, "In Stock", StockStatusInStock.Label())
	assert.Equal(t, "Low Stock", StockStatusLowStock.Label())
	assert.Equal(t, "Out of Stock", StockStatusOutOfStock.Label())
}

func TestMarginPercent(t *testing.T) {
	p := Product{
		Price: decimal.NewFromFloat(45.00),
		Cost:  decimal.NewFromFloat(32.50),
	}
	assert.True(t, decimal.NewFromFloat(12.50).Equal(p.Margin()))

	percent := p.MarginPercent()
	assert.InDelta(t, 38.46, percent.InexactFloat64(), 0.01)
}

func TestMarginPercentZeroCost(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(10), Cost: decimal.Zero}
	assert.True(t, p.MarginPercent().IsZero())
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	assert.True(t, (&Product{ExpiryDate: &past}).IsExpired(now))
	assert.False(t, (&Product{ExpiryDate: &future}).IsExpired(now))
	// No expiry date means the product does not expire.
	assert.False(t, (&Product{}).IsExpired(now))
	// Strictly earlier than now: the boundary instant is not expired.
	assert.False(t, (&Product{ExpiryDate: &now}).IsExpired(now))
}

func TestCategoryValidation(t *testing.T) {
	assert.True(t, IsValidCategory("Snacks"))
	assert.False(t, IsValidCategory("All"), "the All sentinel is never a stored category")
	assert.False(t, IsValidCategory("Electronics"))

	assert.True(t, IsValidFilterCategory("All"))
	assert.True(t, IsValidFilterCategory("Rice"))
	assert.False(t, IsValidFilterCategory("Electronics"))
}
