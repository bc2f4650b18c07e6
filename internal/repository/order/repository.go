package order

import (
	"context"

	"storefront-backend/internal/domain"
)

// Repository is an insert-only store for committed orders.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
