package domain

import "time"

// Payment status values carried on a checkout.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// CheckoutItem is a snapshot of a product taken at checkout-creation time.
// Later catalog changes never alter it.
type CheckoutItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Size           string `json:"size,omitempty"`
	Color          string `json:"color,omitempty"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Checkout is a purchase intent. Its total is computed once at creation
// from the snapshotted unit prices and is never recomputed.
type Checkout struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Items           []CheckoutItem         `json:"checkoutItems"`
	ShippingAddress ShippingAddress        `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TotalCents      int64                  `json:"totalCents"`
	PaymentStatus   string                 `json:"paymentStatus"`
	IsPaid          bool                   `json:"isPaid"`
	PaymentDetails  map[string]interface{} `json:"paymentDetails,omitempty"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	IsFinalized     bool                   `json:"isFinalized"`
	FinalizedAt     *time.Time             `json:"finalizedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}
