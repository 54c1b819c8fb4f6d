package memory

import (
	"context"
	"sort"
	"sync"

	"orderstock/domain/order"

	"github.com/google/uuid"
)

// OrderRepository In-memory implementation of the order repository
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.ReconstructionDTO
}

// NewOrderRepository Create an empty in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]order.ReconstructionDTO),
	}
}

// NextIdentity Generate a new order ID
func (r *OrderRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// FindByID Find order by ID, returning a fresh copy
func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.orders[id]
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	return order.RebuildFromDTO(dto), nil
}

// Save Save order (create or update) with an optimistic lock check
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.orders[o.ID()]
	if !o.IsNew() {
		if !exists {
			return order.NewOrderNotFoundError(o.ID())
		}
		if stored.Version != o.Version() {
			return order.NewConcurrentModificationError(o.ID())
		}
	}

	items := o.Items()
	itemDTOs := make([]order.ItemReconstructionDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = order.ItemReconstructionDTO{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		}
	}

	r.orders[o.ID()] = order.ReconstructionDTO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Currency:   o.Currency(),
		Items:      itemDTOs,
		Status:     o.Status(),
		Version:    o.Version() + 1,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	o.IncrementVersionForSave()
	return nil
}

// Remove Delete an order
func (r *OrderRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return order.NewOrderNotFoundError(id)
	}
	delete(r.orders, id)
	return nil
}

// FindByCustomerID Find all orders placed by a customer, newest first
func (r *OrderRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec := order.NewByCustomerIDSpecification(customerID)
	orders := make([]*order.Order, 0)
	for _, dto := range r.orders {
		o := order.RebuildFromDTO(dto)
		if spec.IsSatisfiedBy(ctx, o) {
			orders = append(orders, o)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})

	return orders, nil
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
