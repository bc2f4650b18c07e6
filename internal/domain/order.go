package domain

import "time"

// Order is the committed fulfillment record produced from a finalized
// checkout. It is append-only: nothing in this subsystem mutates it.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CheckoutItem  `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalCents      int64           `json:"totalCents"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}
