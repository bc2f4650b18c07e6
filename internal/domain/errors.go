package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotPaid indicates a checkout cannot be finalized before payment.
	ErrNotPaid = errors.New("checkout is not paid")
	// ErrAlreadyFinalized indicates the checkout was already converted to an order.
	ErrAlreadyFinalized = errors.New("checkout already finalized")
	// ErrInsufficientStock indicates a stock decrement would drive inventory below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockShortageError names the line item a finalize attempt could not cover.
type StockShortageError struct {
	ProductID string
	Name      string
	Requested int
	InStock   int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, in stock %d", e.Name, e.Requested, e.InStock)
}

func (e *StockShortageError) Unwrap() error { return ErrInsufficientStock }

// ProductGoneError names a line item whose product no longer exists in the catalog.
type ProductGoneError struct {
	ProductID string
	Name      string
}

func (e *ProductGoneError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Name)
}
