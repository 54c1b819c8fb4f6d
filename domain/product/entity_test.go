package product

import (
	"errors"
	"testing"

	"orderstock/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64, currency string) shared.Money {
	t.Helper()
	m, err := shared.NewMoney(amount, currency)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewProduct("product-1", "Laptop", "15-inch developer laptop", mustMoney(t, 99999, "USD"), 10)
		require.NoError(t, err)

		assert.Equal(t, "product-1", p.ID())
		assert.Equal(t, "Laptop", p.Name())
		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, 0, p.Version())
		assert.True(t, p.IsNew())

		events := p.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.created", events[0].EventName())
		assert.Equal(t, p.ID(), events[0].GetAggregateID())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewProduct("", "Laptop", "", mustMoney(t, 100, "USD"), 1)
		assert.True(t, errors.Is(err, ErrInvalidProduct))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewProduct("product-1", "", "", mustMoney(t, 100, "USD"), 1)
		assert.True(t, errors.Is(err, ErrInvalidProduct))
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := NewProduct("product-1", "Mouse", "", mustMoney(t, 100, "USD"), -1)
		assert.True(t, errors.Is(err, ErrInvalidProduct))
	})

	t.Run("zero stock allowed", func(t *testing.T) {
		p, err := NewProduct("product-1", "Mouse", "", mustMoney(t, 100, "USD"), 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})
}

func TestReserveStock(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *Product {
		p, err := NewProduct("product-1", "Keyboard", "", mustMoney(t, 8999, "USD"), stock)
		require.NoError(t, err)
		p.PullEvents()
		return p
	}

	t.Run("reserve decrements", func(t *testing.T) {
		p := newProduct(t, 10)
		require.NoError(t, p.ReserveStock(3))
		assert.Equal(t, 7, p.Stock())

		events := p.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.stock_reserved", events[0].EventName())
	})

	t.Run("reserve entire stock", func(t *testing.T) {
		p := newProduct(t, 5)
		require.NoError(t, p.ReserveStock(5))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("insufficient stock leaves state unchanged", func(t *testing.T) {
		p := newProduct(t, 2)
		err := p.ReserveStock(3)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsufficientStock))
		assert.Equal(t, 2, p.Stock())
		assert.Empty(t, p.PullEvents())
	})

	t.Run("insufficient stock message reports detail", func(t *testing.T) {
		p := newProduct(t, 2)
		err := p.ReserveStock(5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 available, 5 requested")
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 10)
		assert.True(t, errors.Is(p.ReserveStock(0), ErrInvalidQuantity))
		assert.True(t, errors.Is(p.ReserveStock(-1), ErrInvalidQuantity))
		assert.Equal(t, 10, p.Stock())
	})
}

func TestReleaseStock(t *testing.T) {
	p, err := NewProduct("product-1", "Keyboard", "", mustMoney(t, 8999, "USD"), 10)
	require.NoError(t, err)
	p.PullEvents()

	t.Run("reserve then release round trip", func(t *testing.T) {
		require.NoError(t, p.ReserveStock(4))
		require.NoError(t, p.ReleaseStock(4))
		assert.Equal(t, 10, p.Stock())

		events := p.PullEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "product.stock_reserved", events[0].EventName())
		assert.Equal(t, "product.stock_released", events[1].EventName())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		assert.True(t, errors.Is(p.ReleaseStock(0), ErrInvalidQuantity))
	})
}

func TestProductRebuildFromDTO(t *testing.T) {
	original, err := NewProduct("product-1", "Laptop", "desc", mustMoney(t, 99999, "USD"), 10)
	require.NoError(t, err)

	rebuilt := RebuildFromDTO(ReconstructionDTO{
		ID:          original.ID(),
		Name:        original.Name(),
		Description: original.Description(),
		Price:       original.Price(),
		Stock:       original.Stock(),
		Version:     3,
		CreatedAt:   original.CreatedAt(),
		UpdatedAt:   original.UpdatedAt(),
	})

	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Equal(t, 3, rebuilt.Version())
	assert.False(t, rebuilt.IsNew())
	assert.Empty(t, rebuilt.PullEvents())
}

func TestIncrementVersionForSave(t *testing.T) {
	p, err := NewProduct("product-1", "Mouse", "", mustMoney(t, 2999, "USD"), 50)
	require.NoError(t, err)

	assert.True(t, p.IsNew())
	p.IncrementVersionForSave()
	assert.Equal(t, 1, p.Version())
	assert.False(t, p.IsNew())
}
