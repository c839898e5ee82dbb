// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminahq/lumina-inventory/internal/models"
)

var ErrInvalidCriteria = errors.New("invalid query criteria")

type SortField string

const (
	SortFieldName       SortField = "name"
	SortFieldStock      SortField = "stock"
	SortFieldPrice      SortField = "price"
	SortFieldExpiryDate SortField = "expiry_date"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type StockFilter string

const (
	StockFilterAll        StockFilter = "all"
	StockFilterInStock    StockFilter = StockFilter(models.StockStatusInStock)
	StockFilterLowStock   StockFilter = StockFilter(models.StockStatusLowStock)
	StockFilterOutOfStock StockFilter = StockFilter(models.StockStatusOutOfStock)
)

// QueryCriteria is the bundle of filters and ordering driving a single query.
type QueryCriteria struct {
	SearchTerm  string      `json:"search_term"`
	Category    string      `json:"category"`
	StockFilter StockFilter `json:"stock_filter"`
	SortField   SortField   `json:"sort_field"`
	SortOrder   SortOrder   `json:"sort_order"`
}

// DefaultCriteria matches everything, sorted by name ascending.
func DefaultCriteria() QueryCriteria {
	return QueryCriteria{
		Category:    models.CategoryAll,
		StockFilter: StockFilterAll,
		SortField:   SortFieldName,
		SortOrder:   SortOrderAsc,
	}
}

// InventoryService implements the query and aggregation engine. Both
// operations are pure functions of a store snapshot; the service itself
// carries only the clock, so calls behave identically at any invocation
// cadence.
type InventoryService struct {
	now func() time.Time
}

func NewInventoryService() *InventoryService {
	return &InventoryService{now: time.Now}
}

// Query filters and sorts a snapshot. All filter predicates are conjunctive.
// Unrecognized criteria values fail with ErrInvalidCriteria rather than
// silently falling back.
func (s *InventoryService) Query(snapshot []models.Product, c QueryCriteria) ([]models.Product, error) {
	if err := validateCriteria(c); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if !matchesSearch(&p, c.SearchTerm) {
			continue
		}
		if c.Category != models.CategoryAll && p.Category != c.Category {
			continue
		}
		if c.StockFilter != StockFilterAll && models.StockStatus(c.StockFilter) != p.StockStatus() {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return productLess(&out[i], &out[j], c.SortField, c.SortOrder)
	})

	return out, nil
}

// Aggregate computes the dashboard headline numbers over the entire store
// snapshot, active and archived records alike, independent of any filter.
func (s *InventoryService) Aggregate(snapshot []models.Product) models.InventoryStats {
	now := s.now()
	stats := models.InventoryStats{
		TotalProducts: len(snapshot),
		TotalValue:    decimal.Zero,
	}
	for _, p := range snapshot {
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		// Low stock here means at or below the reorder point, so an
		// out-of-stock record counts too. This diverges from the three-way
		// classifier on purpose.
		if p.Stock <= p.MinStock {
			stats.LowStockCount++
		}
		if p.IsExpired(now) {
			stats.ExpiredCount++
		}
	}
	return stats
}

func validateCriteria(c QueryCriteria) error {
	switch c.SortField {
	case SortFieldName, SortFieldStock, SortFieldPrice, SortFieldExpiryDate:
	default:
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidCriteria, c.SortField)
	}
	switch c.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	default:
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidCriteria, c.SortOrder)
	}
	switch c.StockFilter {
	case StockFilterAll, StockFilterInStock, StockFilterLowStock, StockFilterOutOfStock:
	default:
		return fmt.Errorf("%w: unknown stock filter %q", ErrInvalidCriteria, c.StockFilter)
	}
	if !models.IsValidFilterCategory(c.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCriteria, c.Category)
	}
	return nil
}

// matchesSearch does a case-insensitive substring match on the name and a
// case-sensitive one on the barcode. An empty term matches everything.
func matchesSearch(p *models.Product, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
		return true
	}
	return p.Barcode != nil && strings.Contains(*p.Barcode, term)
}

// productLess orders two records for the requested field. A record with an
// absent sort key sorts after every record with a present one, in both
// ascending and descending order; descending reverses only the non-null
// comparisons. Ties keep input order via sort.SliceStable.
func productLess(a, b *models.Product, field SortField, order SortOrder) bool {
	if field == SortFieldExpiryDate {
		switch {
		case a.ExpiryDate == nil:
			return false
		case b.ExpiryDate == nil:
			return true
		}
	}

	cmp := compareField(a, b, field)
	if order == SortOrderDesc {
		cmp = -cmp
	}
	return cmp < 0
}

func compareField(a, b *models.Product, field SortField) int {
	switch field {
	case SortFieldStock:
		switch {
		case a.Stock < b.Stock:
			return -1
		case a.Stock > b.Stock:
			return 1
		}
		return 0
	case SortFieldPrice:
		return a.Price.Cmp(b.Price)
	case SortFieldExpiryDate:
		switch {
		case a.ExpiryDate.Before(*b.ExpiryDate):
			return -1
		case a.ExpiryDate.After(*b.ExpiryDate):
			return 1
		}
		return 0
	default:
		return strings.Compare(a.Name, b.Name)
	}
}
