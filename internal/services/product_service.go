// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminahq/lumina-inventory/internal/models"
	"github.com/luminahq/lumina-inventory/internal/store"
)

var ErrNegativeAmount = errors.New("price and cost must not be negative")

type ProductService struct {
	store *store.ProductStore
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Category    string          `json:"category" validate:"required,product_category"`
	Barcode     string          `json:"barcode,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
	ExpiryDate  string          `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber string          `json:"batch_number,omitempty"`
}

// UpdateProductRequest is a field-level patch. Absent fields are left
// unchanged; an explicit empty string clears an optional field.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,product_category"`
	Barcode     *string          `json:"barcode,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	MinStock    *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	ExpiryDate  *string          `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber *string          `json:"batch_number,omitempty"`
}

func NewProductService(s *store.ProductStore) *ProductService {
	return &ProductService{store: s}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (models.Product, error) {
	if req.Price.IsNegative() || req.Cost.IsNegative() {
		return models.Product{}, ErrNegativeAmount
	}

	draft := models.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
		Stock:    req.Stock,
		MinStock: req.MinStock,
	}
	if req.Barcode != "" {
		draft.Barcode = &req.Barcode
	}
	if req.Description != "" {
		draft.Description = &req.Description
	}
	if req.BatchNumber != "" {
		draft.BatchNumber = &req.BatchNumber
	}
	if req.ExpiryDate != "" {
		d, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return models.Product{}, fmt.Errorf("invalid expiry date: %w", err)
		}
		draft.ExpiryDate = &d
	}

	return s.store.Add(draft)
}

func (s *ProductService) UpdateProduct(id int64, req *UpdateProductRequest) (models.Product, error) {
	if (req.Price != nil && req.Price.IsNegative()) || (req.Cost != nil && req.Cost.IsNegative()) {
		return models.Product{}, ErrNegativeAmount
	}

	patch := store.ProductPatch{
		Name:        req.Name,
		Category:    req.Category,
		Barcode:     req.Barcode,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		BatchNumber: req.BatchNumber,
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			patch.ClearExpiryDate = true
		} else {
			d, err := time.Parse("2006-01-02", *req.ExpiryDate)
			if err != nil {
				return models.Product{}, fmt.Errorf("invalid expiry date: %w", err)
			}
			patch.ExpiryDate = &d
		}
	}

	return s.store.Update(id, patch)
}

func (s *ProductService) ToggleActive(id int64) (models.Product, error) {
	return s.store.ToggleActive(id)
}

func (s *ProductService) GetProduct(id int64) (models.Product, error) {
	return s.store.Get(id)
}

// Snapshot exposes the store's point-in-time copy for the query, stats and
// export paths.
func (s *ProductService) Snapshot() []models.Product {
	return s.store.Snapshot()
}
