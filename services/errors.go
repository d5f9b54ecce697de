package services

import "errors"

// Sentinel errors returned by the state managers. Controllers map these
// to user-facing responses.
var (
	// ErrItemNotFound is returned when a cart mutation targets a line
	// that does not exist. The cart is left unchanged.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrCompareFull is returned when toggling a fifth product into the
	// comparison set. The set is left unchanged; this is a user-facing
	// rejection, not a system error.
	ErrCompareFull = errors.New("compare list is full")

	// ErrProductNotFound is returned for catalog lookups with an
	// unknown product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidCredentials is deliberately identical for "no such
	// user" and "wrong password" to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by signup for a duplicate email.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
