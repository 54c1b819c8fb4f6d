/*
Package product - catalog subdomain error definitions

Design:
1. Sentinel errors support errors.Is() checks and carry no detail.
2. Constructors capture the stack at creation time for precise error origins.
3. Every error supports the error chain back to its sentinel.
4. No transport concepts (HTTP status codes) live here.
*/
package product

import (
	"errors"
	"fmt"

	"orderstock/domain/shared"
)

// ============================================================================
// Catalog sentinel errors
// ============================================================================

var (
	// ErrProductNotFound No product exists for the requested id
	// Usable with: errors.Is(err, ErrProductNotFound)
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct Product constructed with an empty name or negative stock
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInsufficientStock A reservation asked for more than is available
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity Stock operation called with a non-positive quantity
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrConcurrentModification Optimistic lock conflict on save
	// Returned when another transaction modified the product; callers retry.
	ErrConcurrentModification = errors.New("product was modified by another transaction, please retry")
)

// ============================================================================
// Constructors with context and stack
// ============================================================================

// NewProductNotFoundError Create a product-not-found error (with stack)
func NewProductNotFoundError(productID string) error {
	return &productDomainError{
		sentinel: ErrProductNotFound,
		message:  "product not found: " + productID,
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidProductError Create an invalid-product error
func NewInvalidProductError(reason string) error {
	return &productDomainError{
		sentinel: ErrInvalidProduct,
		message:  "invalid product: " + reason,
		stack:    shared.CaptureStack(3),
	}
}

// NewInsufficientStockError Create an insufficient-stock error
// The message reports available vs requested so callers can surface the detail.
func NewInsufficientStockError(productID string, available, requested int) error {
	return &productDomainError{
		sentinel: ErrInsufficientStock,
		message:  fmt.Sprintf("insufficient stock for product %s: %d available, %d requested", productID, available, requested),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidQuantityError Create an invalid-quantity error
func NewInvalidQuantityError(quantity int) error {
	return &productDomainError{
		sentinel: ErrInvalidQuantity,
		message:  fmt.Sprintf("quantity must be positive, got %d", quantity),
		stack:    shared.CaptureStack(3),
	}
}

// NewConcurrentModificationError Create an optimistic-lock conflict error
func NewConcurrentModificationError(productID string) error {
	return &productDomainError{
		sentinel: ErrConcurrentModification,
		message:  "product " + productID + " was modified by another transaction, please retry",
		stack:    shared.CaptureStack(3),
	}
}

// ============================================================================
// Internal error struct implementing error, Unwrap and shared.Stacker
// ============================================================================

type productDomainError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *productDomainError) Error() string {
	return e.message
}

func (e *productDomainError) Unwrap() error {
	return e.sentinel
}

// Stack Implement the shared.Stacker interface
func (e *productDomainError) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}
	return shared.FormatStack(e.stack)
}
