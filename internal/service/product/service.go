package product

import (
	"context"
	"errors"
	"strings"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return errors.New("sku required")
	}
	if p.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	if p.CountInStock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}
