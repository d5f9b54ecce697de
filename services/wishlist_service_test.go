package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/storage"
)

func TestWishlistToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	wishlist := NewWishlistService(storage.NewMemoryStore(), zap.NewNop())
	wishlist.Toggle(ctx, testProduct(1, 10))
	before := wishlist.State()

	wishlist.Toggle(ctx, testProduct(2, 20))
	after := wishlist.Toggle(ctx, testProduct(2, 20))

	assert.Equal(t, before, after)
}

func TestWishlistToggleAddsAndRemoves(t *testing.T) {
	ctx := context.Background()
	wishlist := NewWishlistService(storage.NewMemoryStore(), zap.NewNop())

	state := wishlist.Toggle(ctx, testProduct(1, 10))
	require.Len(t, state.Items, 1)

	state = wishlist.Toggle(ctx, testProduct(1, 10))
	assert.Empty(t, state.Items)
}

func TestWishlistRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	wishlist := NewWishlistService(store, zap.NewNop())
	wishlist.Toggle(ctx, testProduct(1, 10))
	wishlist.Toggle(ctx, testProduct(2, 20))

	state := wishlist.Remove(ctx, 1)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].ID)

	// removing an absent id is a no-op
	state = wishlist.Remove(ctx, 99)
	assert.Len(t, state.Items, 1)

	state = wishlist.Clear(ctx)
	assert.Empty(t, state.Items)

	// clear persists the empty state rather than dropping the key
	data, err := store.Get(ctx, storage.KeyWishlist)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))
}

func TestWishlistPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	wishlist := NewWishlistService(store, zap.NewNop())
	wishlist.Toggle(ctx, testProduct(3, 30))

	reloaded := NewWishlistService(store, zap.NewNop())
	assert.Equal(t, wishlist.State(), reloaded.State())
}

func TestWishlistCorruptPersistedStateFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyWishlist, []byte("[oops")))

	wishlist := NewWishlistService(store, zap.NewNop())
	assert.Empty(t, wishlist.State().Items)
}
