package product

import "context"

// Repository Product repository interface
// Storage-agnostic port: the catalog and order services depend on this
// abstraction, adapters under infrastructure/persistence implement it.
type Repository interface {
	// NextIdentity Generate a new product ID
	NextIdentity() string

	// FindByID Find a product aggregate root by ID
	// Returns ErrProductNotFound when no product exists for the id.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Save Save or update a product aggregate root (upsert by id)
	// Updates perform an optimistic-lock check on Version() and fail with
	// ErrConcurrentModification on a stale write.
	Save(ctx context.Context, p *Product) error

	// FindAll List the whole catalog
	FindAll(ctx context.Context) ([]*Product, error)
}
