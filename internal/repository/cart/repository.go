package cart

import (
	"context"

	"storefront-backend/internal/domain"
)

// Repository owns per-user cart documents.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Upsert(ctx context.Context, c domain.Cart) (*domain.Cart, error)
	// DeleteByUser removes the user's cart entirely. A missing cart is a
	// successful no-op, never an error.
	DeleteByUser(ctx context.Context, userID string) error
}
