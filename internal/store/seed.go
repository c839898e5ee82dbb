// internal/store/seed.go
package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminahq/lumina-inventory/internal/models"
)

// SeedDemoData loads the demo catalog so a fresh development instance has
// something to show. Records get fresh ids through the normal sequence.
func (s *ProductStore) SeedDemoData() {
	for _, p := range demoProducts() {
		s.mu.Lock()
		now := s.now()
		p.ID = s.nextIDLocked()
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products = append(s.products, p)
		s.mu.Unlock()
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Barcode:     strPtr("4800016055321"),
			Name:        "San Mig Light 330ml",
			Category:    "Alcoholic",
			Description: strPtr("Low calorie beer, light and refreshing taste."),
			Price:       decimal.NewFromFloat(45.00),
			Cost:        decimal.NewFromFloat(32.50),
			Stock:       120,
			MinStock:    24,
			ExpiryDate:  datePtr(2024, time.December, 31),
		},
		{
			Barcode:     strPtr("4807770270017"),
			Name:        "Piattos Cheese - Large",
			Category:    "Snacks",
			Description: strPtr("Crispy hexagonal potato chips with cheese flavor."),
			Price:       decimal.NewFromFloat(38.00),
			Cost:        decimal.NewFromFloat(28.00),
			Stock:       15,
			MinStock:    20,
			ExpiryDate:  datePtr(2024, time.June, 15),
		},
		{
			Name:        "Jasmine Rice 1kg",
			Category:    "Rice",
			Description: strPtr("Premium grade fragrant jasmine rice."),
			Price:       decimal.NewFromFloat(55.00),
			Cost:        decimal.NewFromFloat(42.00),
			Stock:       50,
			MinStock:    10,
		},
		{
			Barcode:     strPtr("4806502341219"),
			Name:        "Coke Zero 1.5L",
			Category:    "Non-Alcoholic",
			Description: strPtr("Zero sugar cola beverage."),
			Price:       decimal.NewFromFloat(75.00),
			Cost:        decimal.NewFromFloat(58.00),
			Stock:       8,
			MinStock:    12,
			ExpiryDate:  datePtr(2024, time.January, 20),
		},
		{
			Barcode:     strPtr("4800045612345"),
			Name:        "Gardenia White Bread",
			Category:    "Bakery",
			Description: strPtr("Freshly baked white bread loaf."),
			Price:       decimal.NewFromFloat(82.00),
			Cost:        decimal.NewFromFloat(65.00),
			Stock:       5,
			MinStock:    10,
			ExpiryDate:  datePtr(2023, time.October, 25),
		},
		{
			Barcode:     strPtr("4801234567890"),
			Name:        "Cornetto Vanilla",
			Category:    "Frozen",
			Description: strPtr("Vanilla ice cream cone with chocolate tip."),
			Price:       decimal.NewFromFloat(30.00),
			Cost:        decimal.NewFromFloat(20.00),
			Stock:       45,
			MinStock:    10,
			ExpiryDate:  datePtr(2024, time.August, 30),
		},
		{
			Barcode:     strPtr("4809876543210"),
			Name:        "Safeguard White Soap",
			Category:    "Personal Care",
			Description: strPtr("Antibacterial bar soap."),
			Price:       decimal.NewFromFloat(45.00),
			Cost:        decimal.NewFromFloat(35.00),
			Stock:       100,
			MinStock:    20,
			ExpiryDate:  datePtr(2026, time.January, 1),
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
