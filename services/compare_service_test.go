package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/storage"
)

func TestCompareToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	compare := NewCompareService(storage.NewMemoryStore(), zap.NewNop())
	compare.Toggle(ctx, testProduct(1, 10))
	before := compare.State()

	_, err := compare.Toggle(ctx, testProduct(2, 20))
	require.NoError(t, err)
	after, err := compare.Toggle(ctx, testProduct(2, 20))
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestCompareCapsAtFourItems(t *testing.T) {
	ctx := context.Background()
	compare := NewCompareService(storage.NewMemoryStore(), zap.NewNop())

	for id := 1; id <= 4; id++ {
		_, err := compare.Toggle(ctx, testProduct(id, float64(id)))
		require.NoError(t, err)
	}
	before := compare.State()
	require.Len(t, before.Items, 4)

	state, err := compare.Toggle(ctx, testProduct(5, 5))
	assert.ErrorIs(t, err, ErrCompareFull)
	assert.Equal(t, before, state, "fifth add must leave the set unchanged")

	// toggling a member out still works when full
	state, err = compare.Toggle(ctx, testProduct(4, 4))
	require.NoError(t, err)
	assert.Len(t, state.Items, 3)
}

func TestCompareRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	compare := NewCompareService(store, zap.NewNop())
	compare.Toggle(ctx, testProduct(1, 10))
	compare.Toggle(ctx, testProduct(2, 20))

	state := compare.Remove(ctx, 1)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].ID)

	state = compare.Clear(ctx)
	assert.Empty(t, state.Items)

	data, err := store.Get(ctx, storage.KeyCompare)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))
}

func TestComparePersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	compare := NewCompareService(store, zap.NewNop())
	compare.Toggle(ctx, testProduct(1, 10))
	compare.Toggle(ctx, testProduct(2, 20))

	reloaded := NewCompareService(store, zap.NewNop())
	assert.Equal(t, compare.State(), reloaded.State())
}
