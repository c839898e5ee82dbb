// internal/store/store_test.go
package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminahq/lumina-inventory/internal/models"
)

func newTestStore() *ProductStore {
	s := New()
	current := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }
	return s
}

func draft(name string) models.Product {
	return models.Product{
		Name:     name,
		Category: "Snacks",
		Price:    decimal.NewFromInt(10),
		Cost:     decimal.NewFromInt(5),
		Stock:    10,
		MinStock: 2,
	}
}

func TestAddMintsSequentialIDs(t *testing.T) {
	s := newTestStore()

	first, err := s.Add(draft("Piattos"))
	require.NoError(t, err)
	second, err := s.Add(draft("Nova"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.True(t, first.IsActive)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestAddUsesMaxIDPlusOne(t *testing.T) {
	s := newTestStore()
	s.products = []models.Product{
		{ID: 3, Name: "a"},
		{ID: 7, Name: "b"},
		{ID: 5, Name: "c"},
	}

	p, err := s.Add(draft("new"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.ID)
}

func TestAddRejectsEmptyName(t *testing.T) {
	s := newTestStore()

	_, err := s.Add(draft("   "))
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 0, s.Len())
}

func TestUpdateMergesPatchAndRefreshesTimestamp(t *testing.T) {
	s := newTestStore()
	created, err := s.Add(draft("Piattos"))
	require.NoError(t, err)

	current := time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	stock := 0
	price := decimal.NewFromFloat(12.50)
	barcode := "4800000000001"
	updated, err := s.Update(created.ID, ProductPatch{
		Stock:   &stock,
		Price:   &price,
		Barcode: &barcode,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Stock)
	assert.True(t, price.Equal(updated.Price))
	require.NotNil(t, updated.Barcode)
	assert.Equal(t, barcode, *updated.Barcode)
	// Untouched fields survive the merge.
	assert.Equal(t, "Piattos", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, current, updated.UpdatedAt)
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	s := newTestStore()
	d := draft("Bread")
	expiry := time.Date(2024, time.October, 25, 0, 0, 0, 0, time.UTC)
	d.ExpiryDate = &expiry
	barcode := "123"
	d.Barcode = &barcode

	created, err := s.Add(d)
	require.NoError(t, err)

	empty := ""
	updated, err := s.Update(created.ID, ProductPatch{
		Barcode:         &empty,
		ClearExpiryDate: true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Barcode)
	assert.Nil(t, updated.ExpiryDate)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore()
	_, err := s.Update(42, ProductPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleActiveIsReversible(t *testing.T) {
	s := newTestStore()
	created, err := s.Add(draft("Soap"))
	require.NoError(t, err)

	archived, err := s.ToggleActive(created.ID)
	require.NoError(t, err)
	assert.False(t, archived.IsActive)
	// Archived records are retained, not removed.
	assert.Equal(t, 1, s.Len())

	restored, err := s.ToggleActive(created.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}

func TestToggleActiveUnknownID(t *testing.T) {
	s := newTestStore()
	_, err := s.ToggleActive(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotIsImmune(t *testing.T) {
	s := newTestStore()
	created, err := s.Add(draft("Rice"))
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap, 1)

	stock := 99
	name := "Renamed"
	barcode := "555"
	_, err = s.Update(created.ID, ProductPatch{Stock: &stock, Name: &name, Barcode: &barcode})
	require.NoError(t, err)
	_, err = s.Add(draft("Another"))
	require.NoError(t, err)

	// The earlier snapshot never observes later mutations.
	assert.Len(t, snap, 1)
	assert.Equal(t, "Rice", snap[0].Name)
	assert.Equal(t, 10, snap[0].Stock)
	assert.Nil(t, snap[0].Barcode)
}

func TestGet(t *testing.T) {
	s := newTestStore()
	created, err := s.Add(draft("Coke"))
	require.NoError(t, err)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = s.Get(1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDemoData(t *testing.T) {
	s := newTestStore()
	s.SeedDemoData()

	assert.Equal(t, 7, s.Len())
	for _, p := range s.Snapshot() {
		assert.True(t, p.IsActive)
		assert.True(t, models.IsValidCategory(p.Category), "seed category %q", p.Category)
	}
}
