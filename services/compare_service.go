package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/storage"
)

// maxCompareItems bounds the side-by-side comparison set.
const maxCompareItems = 4

// CompareService owns the bounded comparison set, unique by product id.
type CompareService struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.Logger
	state models.CompareState
}

func NewCompareService(store storage.Store, log *zap.Logger) *CompareService {
	s := &CompareService{store: store, log: log}

	data, err := store.Get(context.Background(), storage.KeyCompare)
	switch {
	case err == nil:
		var state models.CompareState
		if jsonErr := json.Unmarshal(data, &state); jsonErr != nil {
			log.Warn("could not parse persisted compare list, starting empty", zap.Error(jsonErr))
		} else {
			s.state = state
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn("could not read persisted compare list, starting empty", zap.Error(err))
	}

	if s.state.Items == nil {
		s.state.Items = []models.Product{}
	}
	return s
}

// Toggle removes the product when present, otherwise adds it. Adding to
// a full set returns ErrCompareFull and leaves the set unchanged.
func (s *CompareService) Toggle(ctx context.Context, p models.Product) (models.CompareState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOfProduct(s.state.Items, p.ID); idx >= 0 {
		s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
		s.persist(ctx)
		return s.snapshot(), nil
	}

	if len(s.state.Items) >= maxCompareItems {
		return s.snapshot(), ErrCompareFull
	}

	s.state.Items = append(s.state.Items, p)
	s.persist(ctx)
	return s.snapshot(), nil
}

// Remove drops the product with the given id; removing an absent id is
// a no-op.
func (s *CompareService) Remove(ctx context.Context, id int) models.CompareState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOfProduct(s.state.Items, id); idx >= 0 {
		s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	}

	s.persist(ctx)
	return s.snapshot()
}

// Clear empties the comparison set and persists the empty state.
func (s *CompareService) Clear(ctx context.Context) models.CompareState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = []models.Product{}
	s.persist(ctx)
	return s.snapshot()
}

// State returns a copy of the current comparison set.
func (s *CompareService) State() models.CompareState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CompareService) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyCompare, data)
	}
	if err != nil {
		s.log.Error("failed to persist compare list", zap.Error(err))
	}
}

func (s *CompareService) snapshot() models.CompareState {
	items := make([]models.Product, len(s.state.Items))
	copy(items, s.state.Items)
	return models.CompareState{Items: items}
}
