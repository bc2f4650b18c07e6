package product

import (
	"context"

	"storefront-backend/internal/domain"
)

// ListFilter narrows the catalog listing. Zero values mean "no filter".
type ListFilter struct {
	Collection    string
	Size          string
	Color         string
	MinPriceCents int64
	MaxPriceCents int64
	Limit         int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
