package domain

import "time"

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SKU          string    `json:"sku"`
	PriceCents   int64     `json:"priceCents"`
	CountInStock int       `json:"countInStock"`
	Category     string    `json:"category,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	Collection   string    `json:"collection,omitempty"`
	Sizes        []string  `json:"sizes,omitempty"`
	Colors       []string  `json:"colors,omitempty"`
	Images       []string  `json:"images,omitempty"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
}
