package models

// Product is an immutable catalog record. The catalog is the source of
// truth; nothing in the storefront mutates these.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
}
