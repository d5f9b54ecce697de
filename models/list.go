package models

// WishlistState holds the saved products, unique by product id.
type WishlistState struct {
	Items []Product `json:"items"`
}

// CompareState holds the side-by-side comparison set, unique by product
// id and capped at four entries.
type CompareState struct {
	Items []Product `json:"items"`
}
