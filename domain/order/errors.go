/*
Package order - order subdomain error definitions

Design:
1. Sentinel errors support errors.Is() checks.
2. Constructors capture the stack at creation time for precise error origins.
3. Every error supports the error chain back to its sentinel.
4. No transport concepts (HTTP status codes) live here.
*/
package order

import (
	"errors"
	"fmt"

	"orderstock/domain/shared"
)

// ============================================================================
// Order sentinel errors
// ============================================================================

var (
	// ErrOrderNotFound No order exists for the requested id
	// Usable with: errors.Is(err, ErrOrderNotFound)
	ErrOrderNotFound = errors.New("order not found")

	// ErrConcurrentModification Optimistic lock conflict on save
	// Returned when the order was modified by another transaction; callers retry.
	ErrConcurrentModification = errors.New("order was modified by another transaction, please retry")

	// ErrInvalidOrderState Illegal status transition or modification
	// e.g. confirming a cancelled order, adding items to a confirmed order
	ErrInvalidOrderState = errors.New("invalid order state transition")

	// ErrEmptyOrder Confirm called on an order without line items
	ErrEmptyOrder = errors.New("order must have at least one item")

	// ErrInvalidQuantity Line item quantity is not positive
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ============================================================================
// Constructors with context and stack
// ============================================================================

// NewOrderNotFoundError Create an order-not-found error (with stack)
// The returned error supports:
//   - errors.Is(err, ErrOrderNotFound)
//   - err.(shared.Stacker).Stack() for the captured stack
func NewOrderNotFoundError(orderID string) error {
	return &orderDomainError{
		sentinel: ErrOrderNotFound,
		message:  "order not found: " + orderID,
		stack:    shared.CaptureStack(3),
	}
}

// NewConcurrentModificationError Create an optimistic-lock conflict error
func NewConcurrentModificationError(orderID string) error {
	return &orderDomainError{
		sentinel: ErrConcurrentModification,
		message:  "order " + orderID + " was modified by another transaction, please retry",
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidOrderStateError Create an illegal-transition error
// currentState: state at the time of the call, action: the attempted operation
func NewInvalidOrderStateError(currentState, action string) error {
	return &orderDomainError{
		sentinel: ErrInvalidOrderState,
		message:  fmt.Sprintf("cannot %s order in state %s", action, currentState),
		stack:    shared.CaptureStack(3),
	}
}

// NewEmptyOrderError Create an empty-order error
func NewEmptyOrderError(orderID string) error {
	return &orderDomainError{
		sentinel: ErrEmptyOrder,
		field:    "items",
		message:  "cannot confirm order " + orderID + ": order has no items",
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidQuantityError Create an invalid-quantity error
func NewInvalidQuantityError(quantity int) error {
	return &orderDomainError{
		sentinel: ErrInvalidQuantity,
		field:    "quantity",
		message:  fmt.Sprintf("quantity must be positive, got %d", quantity),
		stack:    shared.CaptureStack(3),
	}
}

// ============================================================================
// Internal error struct implementing error, Unwrap and shared.Stacker
// ============================================================================

type orderDomainError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *orderDomainError) Error() string {
	return e.message
}

func (e *orderDomainError) Unwrap() error {
	return e.sentinel
}

// Stack Implement the shared.Stacker interface
func (e *orderDomainError) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}
	return shared.FormatStack(e.stack)
}
