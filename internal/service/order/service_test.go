package order

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/domain"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.orders[o.ID] = &o
	cp := o
	return &cp, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := &stubOrderRepo{orders: map[string]*domain.Order{
		"o1": {ID: "o1", UserID: "u1", TotalCents: 1999},
	}}
	svc := New(repo)

	got, err := svc.Get(context.Background(), "o1", "u1")
	if err != nil {
		t.Fatalf("own order: %v", err)
	}
	if got.ID != "o1" {
		t.Fatalf("unexpected order: %+v", got)
	}

	// A foreign order is indistinguishable from a missing one.
	if _, err := svc.Get(context.Background(), "o1", "u2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign order: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(context.Background(), "missing", "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing order: got %v, want ErrNotFound", err)
	}
}

func TestListByUser(t *testing.T) {
	repo := &stubOrderRepo{orders: map[string]*domain.Order{
		"o1": {ID: "o1", UserID: "u1"},
		"o2": {ID: "o2", UserID: "u2"},
		"o3": {ID: "o3", UserID: "u1"},
	}}
	svc := New(repo)

	orders, err := svc.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
