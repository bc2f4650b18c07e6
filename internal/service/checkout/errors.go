package checkout

import "errors"

var (
	ErrNoItems              = errors.New("no items in checkout")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
