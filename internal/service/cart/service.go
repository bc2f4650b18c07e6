package cart

import (
	"context"
	"errors"

	"storefront-backend/internal/domain"
	cartrepo "storefront-backend/internal/repository/cart"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Upsert(ctx context.Context, c domain.Cart) (*domain.Cart, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the user's cart, or an empty cart if none exists yet.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	return c, nil
}

type AddItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// AddItem snapshots the product server-side and merges it into the
// user's cart, creating the cart if needed.
func (s *Service) AddItem(ctx context.Context, userID string, in AddItemInput) (*domain.Cart, error) {
	if in.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ProductGoneError{ProductID: in.ProductID, Name: in.ProductID}
		}
		return nil, err
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i, item := range cart.Items {
		if item.ProductID == p.ID && item.Size == in.Size && item.Color == in.Color {
			cart.Items[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:      p.ID,
			Name:           p.Name,
			Image:          image,
			UnitPriceCents: p.PriceCents,
			Quantity:       in.Quantity,
			Size:           in.Size,
			Color:          in.Color,
		})
	}

	var total int64
	for _, item := range cart.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	cart.TotalCents = total

	return s.repo.Upsert(ctx, *cart)
}
