/*
Package order Order subdomain - the order lifecycle aggregate

The Order aggregate root owns its line items and the status state machine:

	PENDING ──Confirm──▶ CONFIRMED ──Complete──▶ COMPLETED
	   │                     │
	   └──────Cancel─────────┴──▶ CANCELLED

Items can only be added while PENDING, and every item must match the
currency fixed at order creation. The total is never stored; it is
recomputed from the items on every call.
*/
package order

import (
	"fmt"
	"time"

	"orderstock/domain/shared"

	"github.com/google/uuid"
)

// Status Order lifecycle state
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// OrderItem Line item inside the Order aggregate
// Entities here are owned by the aggregate root and never leave it mutable.
type OrderItem struct {
	id          string
	productID   string
	productName string
	quantity    int
	unitPrice   shared.Money
}

func (i *OrderItem) ID() string              { return i.id }
func (i *OrderItem) ProductID() string       { return i.productID }
func (i *OrderItem) ProductName() string     { return i.productName }
func (i *OrderItem) Quantity() int           { return i.quantity }
func (i *OrderItem) UnitPrice() shared.Money { return i.unitPrice }

// Subtotal Line total = unit price x quantity
func (i *OrderItem) Subtotal() (shared.Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// Order Order aggregate root
// Fields are private; state changes only through behavior methods so the
// status machine and currency invariants cannot be bypassed.
type Order struct {
	id         string
	customerID string
	currency   string
	items      []*OrderItem
	status     Status
	version    int // Optimistic lock version
	createdAt  time.Time
	updatedAt  time.Time

	events []shared.DomainEvent
	isNew  bool
}

// NewOrder Create a new Order aggregate root in PENDING state
// The id comes from Repository.NextIdentity. The currency is fixed here;
// every later item must match it.
func NewOrder(id, customerID, currency string) (*Order, error) {
	if id == "" {
		return nil, shared.NewValidationError("Order", "id", "order ID must not be empty")
	}
	if customerID == "" {
		return nil, shared.NewValidationError("Order", "customerID", "customer ID must not be empty")
	}
	// Reuse the Money validation for the currency code format.
	if _, err := shared.Zero(currency); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &Order{
		id:         id,
		customerID: customerID,
		currency:   currency,
		items:      make([]*OrderItem, 0),
		status:     StatusPending,
		version:    0,
		createdAt:  now,
		updatedAt:  now,
		events:     make([]shared.DomainEvent, 0),
		isNew:      true,
	}

	o.events = append(o.events, NewOrderPlacedEvent(o.id, customerID))

	return o, nil
}

// ============================================================================
// ReconstructionDTO - for repository layer use only
// ============================================================================

// ItemReconstructionDTO Order item reconstruction data transfer object
type ItemReconstructionDTO struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   shared.Money
}

// ReconstructionDTO Order reconstruction data transfer object
// ⚠️ Only for repository implementations, never the application layer.
type ReconstructionDTO struct {
	ID         string
	CustomerID string
	Currency   string
	Items      []ItemReconstructionDTO
	Status     Status
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RebuildFromDTO Reconstruct an Order aggregate root from persisted state
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	items := make([]*OrderItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, &OrderItem{
			id:          it.ID,
			productID:   it.ProductID,
			productName: it.ProductName,
			quantity:    it.Quantity,
			unitPrice:   it.UnitPrice,
		})
	}
	return &Order{
		id:         dto.ID,
		customerID: dto.CustomerID,
		currency:   dto.Currency,
		items:      items,
		status:     dto.Status,
		version:    dto.Version,
		createdAt:  dto.CreatedAt,
		updatedAt:  dto.UpdatedAt,
		events:     nil,
		isNew:      false,
	}
}

// ============================================================================
// Behavior - items
// ============================================================================

// AddItem Add a line item to a PENDING order
// The product name and unit price are captured at add time, so later catalog
// changes do not affect existing orders. Lines for the same product are kept
// separate.
func (o *Order) AddItem(productID, productName string, quantity int, unitPrice shared.Money) error {
	if o.status != StatusPending {
		return NewInvalidOrderStateError(string(o.status), "add item to")
	}
	if productID == "" {
		return shared.NewValidationError("OrderItem", "productID", "product ID must not be empty")
	}
	if quantity <= 0 {
		return NewInvalidQuantityError(quantity)
	}
	if unitPrice.Currency() != o.currency {
		return shared.NewCurrencyMismatchError(o.currency, unitPrice.Currency())
	}

	itemID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate order item ID: %w", err)
	}

	o.items = append(o.items, &OrderItem{
		id:          itemID.String(),
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	})
	o.updatedAt = time.Now()

	return nil
}

// CalculateTotal Recompute the order total from its line items
// An order without items totals zero in the order currency.
func (o *Order) CalculateTotal() (shared.Money, error) {
	total, err := shared.Zero(o.currency)
	if err != nil {
		return shared.Money{}, err
	}
	for _, item := range o.items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return shared.Money{}, err
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return shared.Money{}, err
		}
	}
	return total, nil
}

// ============================================================================
// Behavior - status transitions
// ============================================================================

// Confirm Move the order from PENDING to CONFIRMED
// Fails with ErrEmptyOrder for orders without items.
func (o *Order) Confirm() error {
	if o.status != StatusPending {
		return NewInvalidOrderStateError(string(o.status), "confirm")
	}
	if len(o.items) == 0 {
		return NewEmptyOrderError(o.id)
	}

	o.status = StatusConfirmed
	o.updatedAt = time.Now()
	o.events = append(o.events, NewOrderConfirmedEvent(o.id, o.customerID))

	return nil
}

// Cancel Move a PENDING or CONFIRMED order to CANCELLED
// COMPLETED orders cannot be cancelled; cancelling twice fails as well.
func (o *Order) Cancel(reason string) error {
	if o.status != StatusPending && o.status != StatusConfirmed {
		return NewInvalidOrderStateError(string(o.status), "cancel")
	}

	o.status = StatusCancelled
	o.updatedAt = time.Now()
	o.events = append(o.events, NewOrderCancelledEvent(o.id, o.customerID, reason))

	return nil
}

// Complete Move the order from CONFIRMED to COMPLETED (terminal)
func (o *Order) Complete() error {
	if o.status != StatusConfirmed {
		return NewInvalidOrderStateError(string(o.status), "complete")
	}

	o.status = StatusCompleted
	o.updatedAt = time.Now()
	o.events = append(o.events, NewOrderCompletedEvent(o.id, o.customerID))

	return nil
}

// ============================================================================
// Persistence hooks - for repository layer use only
// ============================================================================

// IsNew Report whether this aggregate was created in this session (not loaded)
func (o *Order) IsNew() bool { return o.isNew }

// IncrementVersionForSave Bump the version after a successful persistence
func (o *Order) IncrementVersionForSave() {
	o.version++
	o.isNew = false
	o.updatedAt = time.Now()
}

// PullEvents Return and clear the recorded domain events
func (o *Order) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(o.events))
	copy(events, o.events)
	o.events = make([]shared.DomainEvent, 0)
	return events
}

// ============================================================================
// Getters - read-only accessors
// ============================================================================

func (o *Order) ID() string           { return o.id }
func (o *Order) CustomerID() string   { return o.customerID }
func (o *Order) Currency() string     { return o.currency }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Version() int         { return o.version }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items Return a copy of the line item slice
// The items themselves are not copied; they expose getters only.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Compile-time check that Order implements AggregateRoot
var _ shared.AggregateRoot = (*Order)(nil)
