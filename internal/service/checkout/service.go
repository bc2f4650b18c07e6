package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/metrics"
	checkoutrepo "storefront-backend/internal/repository/checkout"
)

// Service coordinates the checkout lifecycle: creation, payment
// confirmation and the finalize saga that converts a paid checkout into
// an order across four independently persisted stores.
type Service struct {
	checkouts    checkoutRepo
	inventory    inventoryRepo
	orders       orderRepo
	carts        cartRepo
	products     productRepo
	metrics      *metrics.Checkout
	logger       *log.Logger
	storeTimeout time.Duration
	locks        *keyedLocks
}

type checkoutRepo interface {
	Create(ctx context.Context, in checkoutrepo.CreateCheckoutInput) (*domain.Checkout, error)
	GetByID(ctx context.Context, id string) (*domain.Checkout, error)
	MarkPaid(ctx context.Context, id string, details map[string]interface{}) (*domain.Checkout, error)
	MarkFinalized(ctx context.Context, id string) (*domain.Checkout, error)
	RevertFinalized(ctx context.Context, id string) error
}

type inventoryRepo interface {
	CheckStock(ctx context.Context, productID string) (int, error)
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type cartRepo interface {
	DeleteByUser(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Stores groups the backing stores the coordinator composes.
type Stores struct {
	Checkouts checkoutRepo
	Inventory inventoryRepo
	Orders    orderRepo
	Carts     cartRepo
	Products  productRepo
}

func New(stores Stores, m *metrics.Checkout, logger *log.Logger, storeTimeout time.Duration) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		checkouts:    stores.Checkouts,
		inventory:    stores.Inventory,
		orders:       stores.Orders,
		carts:        stores.Carts,
		products:     stores.Products,
		metrics:      m,
		logger:       logger,
		storeTimeout: storeTimeout,
		locks:        newKeyedLocks(),
	}
}

type CreateItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type CreateInput struct {
	Items           []CreateItemInput      `json:"checkoutItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// Create validates the requested items against the catalog and persists
// a new checkout. Prices are snapshotted server-side at this point; the
// total is computed once and never recomputed.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Checkout, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	var (
		items []domain.CheckoutItem
		total int64
	)
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		p, err := s.getProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ProductGoneError{ProductID: item.ProductID, Name: item.ProductID}
			}
			return nil, err
		}
		if p.CountInStock < item.Quantity {
			return nil, &domain.StockShortageError{ProductID: p.ID, Name: p.Name, Requested: item.Quantity, InStock: p.CountInStock}
		}

		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		items = append(items, domain.CheckoutItem{
			ProductID:      p.ID,
			Name:           p.Name,
			Image:          image,
			UnitPriceCents: p.PriceCents,
			Quantity:       item.Quantity,
			Size:           item.Size,
			Color:          item.Color,
		})
		total += p.PriceCents * int64(item.Quantity)
	}

	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	co, err := s.checkouts.Create(storeCtx, checkoutrepo.CreateCheckoutInput{
		UserID:          userID,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		TotalCents:      total,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}
	s.logger.Printf("checkout service: created checkout id=%s user_id=%s items=%d total_cents=%d", co.ID, userID, len(items), total)
	return co, nil
}

// Pay records an external payment result against the checkout.
func (s *Service) Pay(ctx context.Context, checkoutID, userID, paymentStatus string, details map[string]interface{}) (*domain.Checkout, error) {
	co, err := s.getCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if co.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(paymentStatus, "paid") {
		return nil, ErrInvalidPaymentStatus
	}

	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	paid, err := s.checkouts.MarkPaid(storeCtx, checkoutID, details)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}
	s.logger.Printf("checkout service: checkout id=%s marked paid", checkoutID)
	return paid, nil
}

// Get returns the checkout if it belongs to the requesting user.
func (s *Service) Get(ctx context.Context, checkoutID, userID string) (*domain.Checkout, error) {
	co, err := s.getCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if co.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return co, nil
}

// Finalize converts a paid, unfinalized checkout into a committed order.
//
// There is no transaction spanning the four stores, so consistency rests
// on a saga: an advisory verify pass, a compare-and-swap claim on the
// finalized flag, ordered conditional stock decrements, order creation,
// and exact compensation (re-increment the decremented subset, revert
// the claim) on any commit-phase failure. A failed attempt leaves the
// checkout Paid and retryable.
func (s *Service) Finalize(ctx context.Context, checkoutID, userID string) (*domain.Order, error) {
	release := s.locks.acquire(checkoutID)
	defer release()

	ord, err := s.finalize(ctx, checkoutID, userID)
	s.metrics.ObserveFinalize(finalizeOutcome(err))
	return ord, err
}

func (s *Service) finalize(ctx context.Context, checkoutID, userID string) (*domain.Order, error) {
	co, err := s.getCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if co.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !co.IsPaid {
		return nil, domain.ErrNotPaid
	}
	if co.IsFinalized {
		return nil, domain.ErrAlreadyFinalized
	}

	// Verify phase. Advisory only: it fails fast with a named item but
	// correctness rests on the conditional decrements below, which close
	// the check-then-act window this pass would otherwise leave open.
	for _, item := range co.Items {
		stock, err := s.checkStock(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ProductGoneError{ProductID: item.ProductID, Name: item.Name}
			}
			return nil, fmt.Errorf("verify stock for %s: %w", item.ProductID, err)
		}
		if stock < item.Quantity {
			return nil, &domain.StockShortageError{ProductID: item.ProductID, Name: item.Name, Requested: item.Quantity, InStock: stock}
		}
	}

	// Nothing has been mutated yet; honor cancellation here. Once the
	// commit phase starts the saga runs to a consistent terminal state,
	// so the remaining steps are shielded from the caller's context.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	commitCtx := context.WithoutCancel(ctx)

	// Claim the checkout first: the CAS makes the first caller win and
	// hands every concurrent duplicate ErrAlreadyFinalized with no side
	// effects. The claim is reverted together with stock compensation if
	// a later step fails.
	if _, err := s.markFinalized(commitCtx, checkoutID); err != nil {
		if errors.Is(err, domain.ErrAlreadyFinalized) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("claim checkout: %w", err)
	}

	// Commit phase: conditional decrements in line-item order.
	var decremented []domain.CheckoutItem
	for _, item := range co.Items {
		current, err := s.adjustStock(commitCtx, item.ProductID, -item.Quantity)
		if err != nil {
			s.compensate(commitCtx, checkoutID, decremented)
			switch {
			case errors.Is(err, domain.ErrInsufficientStock):
				return nil, &domain.StockShortageError{ProductID: item.ProductID, Name: item.Name, Requested: item.Quantity, InStock: current}
			case errors.Is(err, domain.ErrNotFound):
				return nil, &domain.ProductGoneError{ProductID: item.ProductID, Name: item.Name}
			default:
				return nil, fmt.Errorf("decrement stock for %s: %w", item.ProductID, err)
			}
		}
		decremented = append(decremented, item)
	}

	created, err := s.createOrder(commitCtx, newOrderFromCheckout(co))
	if err != nil {
		s.logger.Printf("checkout service: order creation failed for checkout id=%s, rolling back stock: %v", checkoutID, err)
		s.compensate(commitCtx, checkoutID, decremented)
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Side cleanup. The order is committed at this point; a failed cart
	// delete is logged, not compensated, and never fails the call.
	if err := s.deleteCart(commitCtx, co.UserID); err != nil {
		s.logger.Printf("checkout service: cart cleanup failed user_id=%s: %v", co.UserID, err)
	}

	s.logger.Printf("checkout service: finalized checkout id=%s order_id=%s total_cents=%d", checkoutID, created.ID, created.TotalCents)
	return created, nil
}

// compensate re-increments exactly the already-decremented items, in
// reverse order, then returns the checkout to Paid by reverting the
// finalized claim. Increments always succeed, so compensation is exact.
func (s *Service) compensate(ctx context.Context, checkoutID string, decremented []domain.CheckoutItem) {
	s.metrics.ObserveCompensation()
	for i := len(decremented) - 1; i >= 0; i-- {
		item := decremented[i]
		if _, err := s.adjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Printf("checkout service: compensation failed product_id=%s qty=%d: %v", item.ProductID, item.Quantity, err)
		}
	}
	if err := s.revertFinalized(ctx, checkoutID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("checkout service: reverting finalized flag failed checkout id=%s: %v", checkoutID, err)
	}
}

func finalizeOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrAlreadyFinalized):
		return "already_finalized"
	case errors.Is(err, domain.ErrNotPaid):
		return "not_paid"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		var gone *domain.ProductGoneError
		if errors.As(err, &gone) {
			return "product_not_found"
		}
		return "error"
	}
}

// Store round-trip helpers. Every call against a backing store is
// bounded by the configured timeout; expiry surfaces like any other
// store failure and triggers the same compensation.

func (s *Service) boundStore(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *Service) getCheckout(ctx context.Context, id string) (*domain.Checkout, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.checkouts.GetByID(storeCtx, id)
}

func (s *Service) getProduct(ctx context.Context, id string) (*domain.Product, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.products.GetByID(storeCtx, id)
}

func (s *Service) checkStock(ctx context.Context, productID string) (int, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.inventory.CheckStock(storeCtx, productID)
}

func (s *Service) adjustStock(ctx context.Context, productID string, delta int) (int, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.inventory.AdjustStock(storeCtx, productID, delta)
}

func (s *Service) markFinalized(ctx context.Context, id string) (*domain.Checkout, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.checkouts.MarkFinalized(storeCtx, id)
}

func (s *Service) revertFinalized(ctx context.Context, id string) error {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.checkouts.RevertFinalized(storeCtx, id)
}

func (s *Service) createOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.orders.Create(storeCtx, o)
}

func (s *Service) deleteCart(ctx context.Context, userID string) error {
	storeCtx, cancel := s.boundStore(ctx)
	defer cancel()
	return s.carts.DeleteByUser(storeCtx, userID)
}
