package storage

import (
	"context"
	"errors"
)

// Storage keys used by the state managers. Each key holds one
// JSON-serialized state object, written after every mutation.
const (
	KeyCart      = "cart"
	KeyWishlist  = "wishlist"
	KeyCompare   = "compare"
	KeyAuthState = "authState"
	KeyUsers     = "users"
	KeyFilters   = "productFilters"
	KeyOrders    = "orders"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence port for the storefront state. Values are
// opaque JSON blobs; the state managers own their shape.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
