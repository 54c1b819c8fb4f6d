package order

import (
	"context"
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

func newPendingOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("order-1", "customer-1", "USD")
	require.NoError(t, err)
	o.PullEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		o, err := NewOrder("order-1", "customer-1", "USD")
		require.NoError(t, err)

		assert.Equal(t, "order-1", o.ID())
		assert.Equal(t, "customer-1", o.CustomerID())
		assert.Equal(t, "USD", o.Currency())
		assert.Equal(t, StatusPending, o.Status())
		assert.Empty(t, o.Items())
		assert.True(t, o.IsNew())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.placed", events[0].EventName())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewOrder("", "customer-1", "USD")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("empty customer", func(t *testing.T) {
		_, err := NewOrder("order-1", "", "USD")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("bad currency", func(t *testing.T) {
		_, err := NewOrder("order-1", "customer-1", "dollars")
		assert.True(t, errors.Is(err, shared.ErrInvalidMoney))
	})
}

func TestAddItem(t *testing.T) {
	t.Run("adds line with captured price", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem("product-1", "Laptop", 2, mustMoney(t, 99999, "USD")))

		items := o.Items()
		require.Len(t, items, 1)
		assert.NotEmpty(t, items[0].ID())
		assert.Equal(t, "product-1", items[0].ProductID())
		assert.Equal(t, "Laptop", items[0].ProductName())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, int64(99999), items[0].UnitPrice().Amount())
	})

	t.Run("duplicate product lines stay separate", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem("product-1", "Laptop", 1, mustMoney(t, 100, "USD")))
		require.NoError(t, o.AddItem("product-1", "Laptop", 2, mustMoney(t, 100, "USD")))
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejected on non-pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem("product-1", "Laptop", 1, mustMoney(t, 100, "USD")))
		require.NoError(t, o.Confirm())

		err := o.AddItem("product-2", "Mouse", 1, mustMoney(t, 100, "USD"))
		assert.True(t, errors.Is(err, ErrInvalidOrderState))
		assert.Len(t, o.Items(), 1)
	})

	t.Run("rejects bad quantity", func(t *testing.T) {
		o := newPendingOrder(t)
		assert.True(t, errors.Is(o.AddItem("product-1", "Laptop", 0, mustMoney(t, 100, "USD")), ErrInvalidQuantity))
		assert.True(t, errors.Is(o.AddItem("product-1", "Laptop", -1, mustMoney(t, 100, "USD")), ErrInvalidQuantity))
	})

	t.Run("rejects currency mismatch", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.AddItem("product-1", "Laptop", 1, mustMoney(t, 100, "EUR"))
		assert.True(t, errors.Is(err, shared.ErrCurrencyMismatch))
		assert.Empty(t, o.Items())
	})

	t.Run("rejects empty product id", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.AddItem("", "Laptop", 1, mustMoney(t, 100, "USD"))
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestCalculateTotal(t *testing.T) {
	t.Run("empty order totals zero", func(t *testing.T) {
		o := newPendingOrder(t)
		total, err := o.CalculateTotal()
		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("sums line subtotals", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem("product-1", "Laptop", 2, mustMoney(t, 99999, "USD"))) // 199998
		require.NoError(t, o.AddItem("product-2", "Mouse", 3, mustMoney(t, 2999, "USD")))  // 8997

		total, err := o.CalculateTotal()
		require.NoError(t, err)
		assert.Equal(t, int64(208995), total.Amount())
	})
}

func TestStatusTransitions(t *testing.T) {
	withItem := func(t *testing.T) *Order {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem("product-1", "Laptop", 1, mustMoney(t, 100, "USD")))
		return o
	}

	t.Run("confirm pending with items", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Confirm())
		assert.Equal(t, StatusConfirmed, o.Status())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.confirmed", events[0].EventName())
	})

	t.Run("confirm empty order fails", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.Confirm()
		assert.True(t, errors.Is(err, ErrEmptyOrder))
		assert.Equal(t, StatusPending, o.Status())
	})

	t.Run("double confirm fails", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Confirm())
		assert.True(t, errors.Is(o.Confirm(), ErrInvalidOrderState))
	})

	t.Run("cancel pending", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Cancel("changed my mind"))
		assert.Equal(t, StatusCancelled, o.Status())

		events := o.PullEvents()
		require.Len(t, events, 1)
		cancelled, ok := events[0].(*OrderCancelledEvent)
		require.True(t, ok)
		assert.Equal(t, "changed my mind", cancelled.Reason())
	})

	t.Run("cancel confirmed", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Cancel(""))
		assert.Equal(t, StatusCancelled, o.Status())
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Cancel(""))
		assert.True(t, errors.Is(o.Cancel(""), ErrInvalidOrderState))
	})

	t.Run("complete confirmed", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Complete())
		assert.Equal(t, StatusCompleted, o.Status())

		events := o.PullEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "order.completed", events[1].EventName())
	})

	t.Run("complete pending fails", func(t *testing.T) {
		o := withItem(t)
		assert.True(t, errors.Is(o.Complete(), ErrInvalidOrderState))
	})

	t.Run("cancel completed fails", func(t *testing.T) {
		o := withItem(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Complete())
		assert.True(t, errors.Is(o.Cancel(""), ErrInvalidOrderState))
	})
}

func TestOrderRebuildFromDTO(t *testing.T) {
	o := RebuildFromDTO(ReconstructionDTO{
		ID:         "order-1",
		CustomerID: "customer-1",
		Currency:   "USD",
		Items: []ItemReconstructionDTO{
			{ID: "item-1", ProductID: "product-1", ProductName: "Laptop", Quantity: 2, UnitPrice: mustMoney(t, 500, "USD")},
		},
		Status:  StatusConfirmed,
		Version: 2,
	})

	assert.Equal(t, StatusConfirmed, o.Status())
	assert.Equal(t, 2, o.Version())
	assert.False(t, o.IsNew())
	require.Len(t, o.Items(), 1)

	total, err := o.CalculateTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total.Amount())
}

func TestSpecifications(t *testing.T) {
	ctx := context.Background()
	o := newPendingOrder(t)

	assert.True(t, NewByCustomerIDSpecification("customer-1").IsSatisfiedBy(ctx, o))
	assert.False(t, NewByCustomerIDSpecification("customer-2").IsSatisfiedBy(ctx, o))
	assert.True(t, NewByStatusSpecification(StatusPending).IsSatisfiedBy(ctx, o))
	assert.False(t, NewByStatusSpecification(StatusCancelled).IsSatisfiedBy(ctx, o))

	combined := shared.AndSpecification[*Order]{
		Left:  NewByCustomerIDSpecification("customer-1"),
		Right: NewByStatusSpecification(StatusPending),
	}
	assert.True(t, combined.IsSatisfiedBy(ctx, o))
}
