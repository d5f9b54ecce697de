package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/storage"
)

// FilterService persists the product listing filters under the
// "productFilters" key. Filters are written by the view boundary on
// every change and read back at startup.
type FilterService struct {
	store storage.Store
	log   *zap.Logger
}

func NewFilterService(store storage.Store, log *zap.Logger) *FilterService {
	return &FilterService{store: store, log: log}
}

// Filters returns the persisted filters, falling back to defaults on a
// missing or unreadable entry.
func (s *FilterService) Filters(ctx context.Context) models.Filters {
	filters := models.DefaultFilters()

	data, err := s.store.Get(ctx, storage.KeyFilters)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("could not read persisted filters, using defaults", zap.Error(err))
		}
		return filters
	}
	if err := json.Unmarshal(data, &filters); err != nil {
		s.log.Warn("could not parse persisted filters, using defaults", zap.Error(err))
		return models.DefaultFilters()
	}
	return filters
}

// Save persists the filters.
func (s *FilterService) Save(ctx context.Context, filters models.Filters) error {
	data, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyFilters, data); err != nil {
		return fmt.Errorf("persist filters: %w", err)
	}
	return nil
}

// ApplyFilters narrows and orders a product list: title search, category
// match (unless "all"), max price cap, then the requested sort.
func ApplyFilters(products []models.Product, filters models.Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	query := strings.ToLower(filters.SearchQuery)

	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if filters.Category != "" && filters.Category != "all" && p.Category != filters.Category {
			continue
		}
		if filters.MaxPrice > 0 && p.Price > filters.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch filters.SortBy {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "name-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case "name-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	}
	return out
}
