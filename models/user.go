package models

type ShippingInfo struct {
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// PaymentInfo stores only a masked card number; full card details are
// never persisted.
type PaymentInfo struct {
	CardName         string `json:"cardName"`
	Expiry           string `json:"expiry"`
	CardNumberMasked string `json:"cardNumberMasked"`
}

// User is a registered-users table entry, keyed by email. Password holds
// the bcrypt hash and is stripped from session copies.
type User struct {
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Password     string        `json:"password,omitempty"`
	ShippingInfo *ShippingInfo `json:"shippingInfo,omitempty"`
	PaymentInfo  *PaymentInfo  `json:"paymentInfo,omitempty"`
}

// AuthState is the current session, persisted under the "authState" key.
// User is a password-free copy of the table entry taken at login.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
