package checkout

import (
	"storefront-backend/internal/domain"
	"github.com/google/uuid"
)

// newOrderFromCheckout is pure construction: it generates the order's
// identity and copies the checkout snapshot. Nothing in this subsystem
// mutates the order afterwards.
func newOrderFromCheckout(co *domain.Checkout) domain.Order {
	items := make([]domain.CheckoutItem, len(co.Items))
	copy(items, co.Items)

	return domain.Order{
		ID:              uuid.NewString(),
		UserID:          co.UserID,
		Items:           items,
		ShippingAddress: co.ShippingAddress,
		PaymentMethod:   co.PaymentMethod,
		TotalCents:      co.TotalCents,
		IsPaid:          true,
		PaidAt:          co.PaidAt,
		IsDelivered:     false,
		PaymentStatus:   "paid",
	}
}
