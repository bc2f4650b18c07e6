package checkout

import (
	"context"

	"storefront-backend/internal/domain"
)

type CreateCheckoutInput struct {
	UserID          string
	Items           []domain.CheckoutItem
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	TotalCents      int64
}

// Repository owns checkout records and their payment/finalization state.
type Repository interface {
	Create(ctx context.Context, in CreateCheckoutInput) (*domain.Checkout, error)
	GetByID(ctx context.Context, id string) (*domain.Checkout, error)
	// MarkPaid records a successful payment against the checkout.
	MarkPaid(ctx context.Context, id string, details map[string]interface{}) (*domain.Checkout, error)
	// MarkFinalized flips is_finalized false→true as a compare-and-swap.
	// Exactly one caller wins; losers get domain.ErrAlreadyFinalized.
	MarkFinalized(ctx context.Context, id string) (*domain.Checkout, error)
	// RevertFinalized undoes a MarkFinalized claim after a failed saga so
	// the checkout returns to Paid and the call can be retried.
	RevertFinalized(ctx context.Context, id string) error
}
