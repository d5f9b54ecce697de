package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/storage"
)

func TestFiltersDefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	filters := NewFilterService(store, zap.NewNop())

	assert.Equal(t, models.DefaultFilters(), filters.Filters(ctx))

	saved := models.Filters{Category: "audio", MaxPrice: 500, SortBy: "price-asc", SearchQuery: "buds"}
	require.NoError(t, filters.Save(ctx, saved))
	assert.Equal(t, saved, filters.Filters(ctx))
}

func TestFiltersCorruptEntryFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyFilters, []byte("{{")))

	filters := NewFilterService(store, zap.NewNop())
	assert.Equal(t, models.DefaultFilters(), filters.Filters(ctx))
}

func TestApplyFilters(t *testing.T) {
	products := testCatalog()

	t.Run("Search Query Matches Title", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SearchQuery: "lap"})

		require.Len(t, out, 1)
		assert.Equal(t, "Laptop", out[0].Title)
	})

	t.Run("Category", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "audio", MaxPrice: 4000})
		assert.Len(t, out, 2)
	})

	t.Run("Max Price", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 200})
		assert.Len(t, out, 2)
	})

	t.Run("Sort Price Asc", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SortBy: "price-asc"})

		require.Len(t, out, 4)
		assert.Equal(t, "Buds", out[0].Title)
		assert.Equal(t, "Laptop", out[3].Title)
	})

	t.Run("Sort Price Desc", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SortBy: "price-desc"})

		require.Len(t, out, 4)
		assert.Equal(t, "Laptop", out[0].Title)
	})

	t.Run("Sort Name Asc", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SortBy: "name-asc"})

		require.Len(t, out, 4)
		assert.Equal(t, "Buds", out[0].Title)
	})

	t.Run("Sort Name Desc", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SortBy: "name-desc"})

		require.Len(t, out, 4)
		assert.Equal(t, "Speaker", out[0].Title)
		assert.Equal(t, "Buds", out[3].Title)
	})

	t.Run("Default Sort Keeps Catalog Order", func(t *testing.T) {
		out := ApplyFilters(products, models.Filters{Category: "all", MaxPrice: 4000, SortBy: "default"})
		assert.Equal(t, products, out)
	})
}
