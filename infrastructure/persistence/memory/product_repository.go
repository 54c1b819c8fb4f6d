/*
Package memory In-memory persistence adapters for development and tests.

Repositories store reconstruction DTOs, never live aggregates: every read
rebuilds a fresh copy, so callers can mutate what they loaded without
affecting the store until Save. Saves perform the same optimistic-lock
version check as the MySQL adapter.
*/
package memory

import (
	"context"
	"sync"

	"orderstock/domain/product"

	"github.com/google/uuid"
)

// ProductRepository In-memory implementation of the product repository
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]product.ReconstructionDTO
}

// NewProductRepository Create an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]product.ReconstructionDTO),
	}
}

// NextIdentity Generate a new product ID
func (r *ProductRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// FindByID Find product by ID, returning a fresh copy
func (r *ProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.products[id]
	if !ok {
		return nil, product.NewProductNotFoundError(id)
	}
	return product.RebuildFromDTO(dto), nil
}

// Save Save product (create or update) with an optimistic lock check
func (r *ProductRepository) Save(_ context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.products[p.ID()]
	if !p.IsNew() {
		if !exists {
			return product.NewProductNotFoundError(p.ID())
		}
		if stored.Version != p.Version() {
			return product.NewConcurrentModificationError(p.ID())
		}
	}

	r.products[p.ID()] = product.ReconstructionDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Version:     p.Version() + 1,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	p.IncrementVersionForSave()
	return nil
}

// FindAll List the whole catalog as fresh copies
func (r *ProductRepository) FindAll(_ context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*product.Product, 0, len(r.products))
	for _, dto := range r.products {
		products = append(products, product.RebuildFromDTO(dto))
	}
	return products, nil
}

// Compile-time interface implementation check
var _ product.Repository = (*ProductRepository)(nil)
