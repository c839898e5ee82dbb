// internal/store/store.go
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminahq/lumina-inventory/internal/models"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrEmptyName = errors.New("product name is required")
)

// ProductStore owns the in-memory product collection for the lifetime of the
// process and the sequence used to mint identifiers. All reads go through
// Snapshot, which hands out value copies that never observe later mutations.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
	now      func() time.Time
}

func New() *ProductStore {
	return &ProductStore{now: time.Now}
}

// ProductPatch carries field-level updates. Nil fields are left unchanged.
// For optional string fields an explicit empty string clears the value.
type ProductPatch struct {
	Name            *string
	Category        *string
	Barcode         *string
	Description     *string
	Price           *decimal.Decimal
	Cost            *decimal.Decimal
	Stock           *int
	MinStock        *int
	ExpiryDate      *time.Time
	ClearExpiryDate bool
	BatchNumber     *string
}

// Add inserts a new product with a fresh identifier (one greater than the
// current maximum, 1 for an empty store) and creation timestamps.
func (s *ProductStore) Add(draft models.Product) (models.Product, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return models.Product{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	draft.ID = s.nextIDLocked()
	draft.IsActive = true
	draft.CreatedAt = now
	draft.UpdatedAt = now
	s.products = append(s.products, draft)

	return cloneProduct(draft), nil
}

// Update merges patch onto the existing record and refreshes UpdatedAt.
func (s *ProductStore) Update(id int64, patch ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Product{}, ErrNotFound
	}

	p := &s.products[idx]
	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Barcode != nil {
		p.Barcode = optionalString(*patch.Barcode)
	}
	if patch.Description != nil {
		p.Description = optionalString(*patch.Description)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.ClearExpiryDate {
		p.ExpiryDate = nil
	} else if patch.ExpiryDate != nil {
		d := *patch.ExpiryDate
		p.ExpiryDate = &d
	}
	if patch.BatchNumber != nil {
		p.BatchNumber = optionalString(*patch.BatchNumber)
	}
	p.UpdatedAt = s.now()

	return cloneProduct(*p), nil
}

// ToggleActive flips the soft-delete flag. Archived records are retained and
// the toggle is reversible.
func (s *ProductStore) ToggleActive(id int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Product{}, ErrNotFound
	}

	p := &s.products[idx]
	p.IsActive = !p.IsActive
	p.UpdatedAt = s.now()

	return cloneProduct(*p), nil
}

// Get returns a copy of a single record.
func (s *ProductStore) Get(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Product{}, ErrNotFound
	}
	return cloneProduct(s.products[idx]), nil
}

// Snapshot returns a point-in-time value copy of the whole collection, safe
// to hand to pure computations while the live store keeps mutating.
func (s *ProductStore) Snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Len returns the total record count, archived records included.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *ProductStore) nextIDLocked() int64 {
	var max int64
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (s *ProductStore) indexLocked(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneProduct(p models.Product) models.Product {
	out := p
	out.Barcode = clonePtr(p.Barcode)
	out.Description = clonePtr(p.Description)
	out.BatchNumber = clonePtr(p.BatchNumber)
	if p.ExpiryDate != nil {
		d := *p.ExpiryDate
		out.ExpiryDate = &d
	}
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
