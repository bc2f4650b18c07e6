package domain

import "time"

// Cart holds a user's pending selections. It is deleted in full, not
// emptied, when a checkout over it finalizes.
type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CartItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Size           string `json:"size,omitempty"`
	Color          string `json:"color,omitempty"`
}
