package memory

import (
	"context"
	"errors"
	"testing"

	orderdomain "orderstock/domain/order"
	productdomain "orderstock/domain/product"
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

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find returns fresh copies", func(t *testing.T) {
		repo := NewProductRepository()
		p, err := productdomain.NewProduct(repo.NextIdentity(), "Laptop", "", mustMoney(t, 99999, "USD"), 10)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		loaded, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)

		// Mutating the loaded copy must not leak into the store.
		require.NoError(t, loaded.ReserveStock(5))
		again, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, 10, again.Stock())
	})

	t.Run("missing product", func(t *testing.T) {
		repo := NewProductRepository()
		_, err := repo.FindByID(ctx, "missing")
		assert.True(t, errors.Is(err, productdomain.ErrProductNotFound))
	})

	t.Run("stale save fails with conflict", func(t *testing.T) {
		repo := NewProductRepository()
		p, err := productdomain.NewProduct(repo.NextIdentity(), "Mouse", "", mustMoney(t, 2999, "USD"), 50)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		first, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)

		require.NoError(t, first.ReserveStock(1))
		require.NoError(t, repo.Save(ctx, first))

		require.NoError(t, second.ReserveStock(1))
		err = repo.Save(ctx, second)
		assert.True(t, errors.Is(err, productdomain.ErrConcurrentModification))

		// The first writer's decrement survived, nothing was lost.
		current, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, 49, current.Stock())
	})

	t.Run("find all", func(t *testing.T) {
		repo := NewProductRepository()
		for _, name := range []string{"Laptop", "Mouse", "Keyboard"} {
			p, err := productdomain.NewProduct(repo.NextIdentity(), name, "", mustMoney(t, 100, "USD"), 1)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, p))
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("next identity is unique", func(t *testing.T) {
		repo := NewProductRepository()
		assert.NotEqual(t, repo.NextIdentity(), repo.NextIdentity())
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()

	newOrder := func(t *testing.T, repo *OrderRepository, customerID string) *orderdomain.Order {
		t.Helper()
		o, err := orderdomain.NewOrder(repo.NextIdentity(), customerID, "USD")
		require.NoError(t, err)
		require.NoError(t, o.AddItem("product-1", "Widget", 2, mustMoney(t, 500, "USD")))
		return o
	}

	t.Run("save and find round trip", func(t *testing.T) {
		repo := NewOrderRepository()
		o := newOrder(t, repo, "customer-1")
		require.NoError(t, repo.Save(ctx, o))

		loaded, err := repo.FindByID(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, o.ID(), loaded.ID())
		assert.Equal(t, orderdomain.StatusPending, loaded.Status())
		require.Len(t, loaded.Items(), 1)

		total, err := loaded.CalculateTotal()
		require.NoError(t, err)
		assert.Equal(t, int64(1000), total.Amount())
	})

	t.Run("stale save fails with conflict", func(t *testing.T) {
		repo := NewOrderRepository()
		o := newOrder(t, repo, "customer-1")
		require.NoError(t, repo.Save(ctx, o))

		first, err := repo.FindByID(ctx, o.ID())
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, o.ID())
		require.NoError(t, err)

		require.NoError(t, first.Confirm())
		require.NoError(t, repo.Save(ctx, first))

		require.NoError(t, second.Cancel(""))
		err = repo.Save(ctx, second)
		assert.True(t, errors.Is(err, orderdomain.ErrConcurrentModification))
	})

	t.Run("remove", func(t *testing.T) {
		repo := NewOrderRepository()
		o := newOrder(t, repo, "customer-1")
		require.NoError(t, repo.Save(ctx, o))
		require.NoError(t, repo.Remove(ctx, o.ID()))

		_, err := repo.FindByID(ctx, o.ID())
		assert.True(t, errors.Is(err, orderdomain.ErrOrderNotFound))
		assert.True(t, errors.Is(repo.Remove(ctx, o.ID()), orderdomain.ErrOrderNotFound))
	})

	t.Run("find by customer filters and survives other customers", func(t *testing.T) {
		repo := NewOrderRepository()
		for i := 0; i < 2; i++ {
			require.NoError(t, repo.Save(ctx, newOrder(t, repo, "customer-1")))
		}
		require.NoError(t, repo.Save(ctx, newOrder(t, repo, "customer-2")))

		orders, err := repo.FindByCustomerID(ctx, "customer-1")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		for _, o := range orders {
			assert.Equal(t, "customer-1", o.CustomerID())
		}
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("executes function and drains events", func(t *testing.T) {
		uow := NewUnitOfWork()
		p, err := productdomain.NewProduct("product-1", "Laptop", "", mustMoney(t, 100, "USD"), 1)
		require.NoError(t, err)

		err = uow.Execute(ctx, func(ctx context.Context) error {
			uow.RegisterNew(p)
			return nil
		})
		require.NoError(t, err)

		// Events were pulled by the unit of work.
		assert.Empty(t, p.PullEvents())
	})

	t.Run("propagates errors without draining", func(t *testing.T) {
		uow := NewUnitOfWork()
		p, err := productdomain.NewProduct("product-1", "Laptop", "", mustMoney(t, 100, "USD"), 1)
		require.NoError(t, err)

		wantErr := errors.New("boom")
		err = uow.Execute(ctx, func(ctx context.Context) error {
			uow.RegisterNew(p)
			return wantErr
		})
		assert.Equal(t, wantErr, err)
		assert.Len(t, p.PullEvents(), 1)
	})
}
