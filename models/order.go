package models

import "time"

// Order is a completed mock checkout, appended to the persisted "orders"
// list. No payment actually moves.
type Order struct {
	ID            string       `json:"id"`
	Items         []CartItem   `json:"items"`
	TotalQuantity int          `json:"totalQuantity"`
	TotalAmount   float64      `json:"totalAmount"`
	Customer      ShippingInfo `json:"customer"`
	Email         string       `json:"email"`
	PaymentMethod string       `json:"paymentMethod"`
	CreatedAt     time.Time    `json:"createdAt"`
}
