package models

// CartItem is one cart line: a product plus the quantity held and the
// line total priced at time of add.
type CartItem struct {
	Product
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// CartState is the full cart snapshot persisted under the "cart" key.
// TotalQuantity and TotalAmount are roll-ups recomputed from Items on
// every mutation, never trusted incrementally.
type CartState struct {
	Items         []CartItem `json:"items"`
	TotalQuantity int        `json:"totalQuantity"`
	TotalAmount   float64    `json:"totalAmount"`
}
