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

// CartService owns the cart lines and their derived totals. Every
// mutation recomputes TotalQuantity and TotalAmount from the lines and
// writes the full snapshot to the store.
type CartService struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.Logger
	state models.CartState
}

func NewCartService(store storage.Store, log *zap.Logger) *CartService {
	s := &CartService{store: store, log: log}

	data, err := store.Get(context.Background(), storage.KeyCart)
	switch {
	case err == nil:
		var state models.CartState
		if jsonErr := json.Unmarshal(data, &state); jsonErr != nil {
			log.Warn("could not parse persisted cart, starting empty", zap.Error(jsonErr))
		} else {
			s.state = state
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn("could not read persisted cart, starting empty", zap.Error(err))
	}

	if s.state.Items == nil {
		s.state.Items = []models.CartItem{}
	}
	return s
}

// AddItem increments the quantity of an existing line for the product,
// or appends a new line with quantity 1. No stock-limit check is made.
func (s *CartService) AddItem(ctx context.Context, p models.Product) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.state.Items {
		if s.state.Items[i].ID == p.ID {
			s.state.Items[i].Quantity++
			s.state.Items[i].TotalPrice += p.Price
			found = true
			break
		}
	}
	if !found {
		s.state.Items = append(s.state.Items, models.CartItem{
			Product:    p,
			Quantity:   1,
			TotalPrice: p.Price,
		})
	}

	s.recompute()
	s.persist(ctx)
	return s.snapshot()
}

// RemoveItem decrements the matching line by one unit, deleting the line
// when the last unit goes. Returns ErrItemNotFound, with the cart
// unchanged, when no line matches.
func (s *CartService) RemoveItem(ctx context.Context, id int) (models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return s.snapshot(), ErrItemNotFound
	}

	if s.state.Items[idx].Quantity == 1 {
		s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	} else {
		s.state.Items[idx].Quantity--
		s.state.Items[idx].TotalPrice -= s.state.Items[idx].Price
	}

	s.recompute()
	s.persist(ctx)
	return s.snapshot(), nil
}

// DeleteItem removes the whole line regardless of quantity.
func (s *CartService) DeleteItem(ctx context.Context, id int) (models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return s.snapshot(), ErrItemNotFound
	}

	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)

	s.recompute()
	s.persist(ctx)
	return s.snapshot(), nil
}

// Clear resets the cart and removes the persisted entry.
func (s *CartService) Clear(ctx context.Context) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.CartState{Items: []models.CartItem{}}
	if err := s.store.Delete(ctx, storage.KeyCart); err != nil {
		s.log.Error("failed to delete persisted cart", zap.Error(err))
	}
	return s.snapshot()
}

// State returns a copy of the current cart.
func (s *CartService) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) indexOf(id int) int {
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// recompute derives both totals from the lines. Incremental arithmetic
// alone is never trusted.
func (s *CartService) recompute() {
	quantity := 0
	amount := 0.0
	for _, item := range s.state.Items {
		quantity += item.Quantity
		amount += item.TotalPrice
	}
	s.state.TotalQuantity = quantity
	s.state.TotalAmount = amount
}

func (s *CartService) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyCart, data)
	}
	if err != nil {
		s.log.Error("failed to persist cart", zap.Error(err))
	}
}

func (s *CartService) snapshot() models.CartState {
	out := s.state
	out.Items = make([]models.CartItem, len(s.state.Items))
	copy(out.Items, s.state.Items)
	return out
}
