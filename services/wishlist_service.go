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

// WishlistService owns the set of saved products, unique by product id.
type WishlistService struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.Logger
	state models.WishlistState
}

func NewWishlistService(store storage.Store, log *zap.Logger) *WishlistService {
	s := &WishlistService{store: store, log: log}

	data, err := store.Get(context.Background(), storage.KeyWishlist)
	switch {
	case err == nil:
		var state models.WishlistState
		if jsonErr := json.Unmarshal(data, &state); jsonErr != nil {
			log.Warn("could not parse persisted wishlist, starting empty", zap.Error(jsonErr))
		} else {
			s.state = state
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn("could not read persisted wishlist, starting empty", zap.Error(err))
	}

	if s.state.Items == nil {
		s.state.Items = []models.Product{}
	}
	return s
}

// Toggle removes the product when present, otherwise adds it.
func (s *WishlistService) Toggle(ctx context.Context, p models.Product) models.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOfProduct(s.state.Items, p.ID); idx >= 0 {
		s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	} else {
		s.state.Items = append(s.state.Items, p)
	}

	s.persist(ctx)
	return s.snapshot()
}

// Remove drops the product with the given id; removing an absent id is
// a no-op.
func (s *WishlistService) Remove(ctx context.Context, id int) models.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOfProduct(s.state.Items, id); idx >= 0 {
		s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	}

	s.persist(ctx)
	return s.snapshot()
}

// Clear empties the wishlist and persists the empty state.
func (s *WishlistService) Clear(ctx context.Context) models.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = []models.Product{}
	s.persist(ctx)
	return s.snapshot()
}

// State returns a copy of the current wishlist.
func (s *WishlistService) State() models.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *WishlistService) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyWishlist, data)
	}
	if err != nil {
		s.log.Error("failed to persist wishlist", zap.Error(err))
	}
}

func (s *WishlistService) snapshot() models.WishlistState {
	items := make([]models.Product, len(s.state.Items))
	copy(items, s.state.Items)
	return models.WishlistState{Items: items}
}

func indexOfProduct(items []models.Product, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
