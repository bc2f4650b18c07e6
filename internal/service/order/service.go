package order

import (
	"context"

	"storefront-backend/internal/domain"
	orderrepo "storefront-backend/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns the order if it belongs to the requesting user.
func (s *Service) Get(ctx context.Context, id, userID string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
