/*
Package product Catalog subdomain - products and their stock pool

The Product aggregate owns the only mutable shared resource in the system:
the stock counter. All stock movements go through ReserveStock/ReleaseStock so
the "stock never negative" invariant is enforced in exactly one place.
*/
package product

import (
	"fmt"
	"time"

	"orderstock/domain/shared"
)

// Product Catalog aggregate root
// Fields are private; state changes only through behavior methods.
type Product struct {
	id          string
	name        string
	description string
	price       shared.Money
	stock       int
	version     int // Optimistic lock version for concurrent stock updates
	createdAt   time.Time
	updatedAt   time.Time

	events []shared.DomainEvent
	isNew  bool
}

// NewProduct Create a new Product aggregate root
// The only entry point for creating products; validates all invariants.
// The id comes from Repository.NextIdentity. Price validity (non-negative
// amount, well-formed currency) is already guaranteed by the shared.Money type.
func NewProduct(id, name, description string, price shared.Money, stock int) (*Product, error) {
	if id == "" {
		return nil, NewInvalidProductError("id must not be empty")
	}
	if name == "" {
		return nil, NewInvalidProductError("name must not be empty")
	}
	if stock < 0 {
		return nil, NewInvalidProductError(fmt.Sprintf("stock must not be negative, got %d", stock))
	}

	now := time.Now()
	p := &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		version:     0,
		createdAt:   now,
		updatedAt:   now,
		events:      make([]shared.DomainEvent, 0),
		isNew:       true,
	}

	p.events = append(p.events, NewProductCreatedEvent(p.id, name, price, stock))

	return p, nil
}

// ============================================================================
// ReconstructionDTO - for repository layer use only
// Fields are private, so repositories rebuild aggregates through this DTO
// instead of setters or reflection.
// ============================================================================

// ReconstructionDTO Product reconstruction data transfer object
// ⚠️ Only for repository implementations, never the application layer.
type ReconstructionDTO struct {
	ID          string
	Name        string
	Description string
	Price       shared.Money
	Stock       int
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildFromDTO Reconstruct a Product aggregate root from persisted state
func RebuildFromDTO(dto ReconstructionDTO) *Product {
	return &Product{
		id:          dto.ID,
		name:        dto.Name,
		description: dto.Description,
		price:       dto.Price,
		stock:       dto.Stock,
		version:     dto.Version,
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
		events:      nil,
		isNew:       false,
	}
}

// ============================================================================
// Stock behavior - the reservation/compensation pair
// ============================================================================

// ReserveStock Decrement available stock for an order line
// Fails with ErrInvalidQuantity for non-positive quantities and with
// ErrInsufficientStock (reporting available vs requested) when the pool is
// too small; on failure the stock value is left untouched.
func (p *Product) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return NewInvalidQuantityError(quantity)
	}
	if p.stock < quantity {
		return NewInsufficientStockError(p.id, p.stock, quantity)
	}

	p.stock -= quantity
	p.updatedAt = time.Now()
	p.events = append(p.events, NewStockReservedEvent(p.id, quantity, p.stock))

	return nil
}

// ReleaseStock Return previously reserved stock to the pool
// Compensation action: trusted to mirror an earlier reservation exactly, so
// there is no upper bound check against prior reservations.
func (p *Product) ReleaseStock(quantity int) error {
	if quantity <= 0 {
		return NewInvalidQuantityError(quantity)
	}

	p.stock += quantity
	p.updatedAt = time.Now()
	p.events = append(p.events, NewStockReleasedEvent(p.id, quantity, p.stock))

	return nil
}

// ============================================================================
// Persistence hooks - for repository layer use only
// ============================================================================

// IsNew Report whether this aggregate was created in this session (not loaded)
func (p *Product) IsNew() bool { return p.isNew }

// IncrementVersionForSave Bump the version after a successful persistence
// Called by the repository once the write is confirmed, so optimistic locking
// always compares against the version the database actually holds.
func (p *Product) IncrementVersionForSave() {
	p.version++
	p.isNew = false
	p.updatedAt = time.Now()
}

// PullEvents Return and clear the recorded domain events
func (p *Product) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(p.events))
	copy(events, p.events)
	p.events = make([]shared.DomainEvent, 0)
	return events
}

// ============================================================================
// Getters - read-only accessors
// ============================================================================

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() shared.Money  { return p.price }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) Version() int         { return p.version }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// Compile-time check that Product implements AggregateRoot
var _ shared.AggregateRoot = (*Product)(nil)
