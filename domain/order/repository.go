package order

import "context"

// Repository Order repository interface
// Storage-agnostic port; adapters under infrastructure/persistence implement it.
type Repository interface {
	// NextIdentity Generate a new order ID
	NextIdentity() string

	// FindByID Find an order aggregate root by ID
	// Returns ErrOrderNotFound when no order exists for the id.
	FindByID(ctx context.Context, id string) (*Order, error)

	// Save Save or update an order aggregate root (upsert by id)
	// Updates perform an optimistic-lock check on Version() and fail with
	// ErrConcurrentModification on a stale write.
	Save(ctx context.Context, o *Order) error

	// Remove Delete an order aggregate root
	// Returns ErrOrderNotFound when no order exists for the id.
	Remove(ctx context.Context, id string) error

	// FindByCustomerID List all orders placed by a customer, newest first
	FindByCustomerID(ctx context.Context, customerID string) ([]*Order, error)
}
