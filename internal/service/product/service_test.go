package product

import (
	"context"
	"testing"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
)

type stubProductRepo struct {
	created *domain.Product
}

func (s *stubProductRepo) List(_ context.Context, _ productrepo.ListFilter) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.created = &p
	cp := p
	return &cp, nil
}

func (s *stubProductRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	cp := p
	return &cp, nil
}

func (s *stubProductRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func TestCreateValidation(t *testing.T) {
	repo := &stubProductRepo{}
	svc := New(repo)

	cases := []struct {
		name string
		in   domain.Product
	}{
		{"missing name", domain.Product{SKU: "SKU1", PriceCents: 100}},
		{"missing sku", domain.Product{Name: "Tee", PriceCents: 100}},
		{"negative price", domain.Product{Name: "Tee", SKU: "SKU1", PriceCents: -1}},
		{"negative stock", domain.Product{Name: "Tee", SKU: "SKU1", PriceCents: 100, CountInStock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
	if repo.created != nil {
		t.Fatalf("invalid product reached the store: %+v", repo.created)
	}

	if _, err := svc.Create(context.Background(), domain.Product{Name: "Tee", SKU: "SKU1", PriceCents: 1999, CountInStock: 5}); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
	if repo.created == nil || repo.created.SKU != "SKU1" {
		t.Fatalf("product not persisted: %+v", repo.created)
	}
}
