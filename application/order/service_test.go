package order

import (
	"context"
	"errors"
	"testing"

	orderdomain "orderstock/domain/order"
	productdomain "orderstock/domain/product"
	"orderstock/domain/shared"
	"orderstock/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orderRepo   *memory.OrderRepository
	productRepo *memory.ProductRepository
	service     *ApplicationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orderRepo := memory.NewOrderRepository()
	productRepo := memory.NewProductRepository()
	service := NewApplicationService(orderRepo, productRepo, memory.NewUnitOfWorkFactory(), "USD")
	return &fixture{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		service:     service,
	}
}

func (f *fixture) seedProduct(t *testing.T, name string, price int64, stock int) string {
	t.Helper()
	money, err := shared.NewMoney(price, "USD")
	require.NoError(t, err)
	p, err := productdomain.NewProduct(f.productRepo.NextIdentity(), name, "", money, stock)
	require.NoError(t, err)
	require.NoError(t, f.productRepo.Save(context.Background(), p))
	return p.ID()
}

// vanishingProductRepository reports every product as missing, simulating a
// catalog entry removed after its orders were placed.
type vanishingProductRepository struct {
	*memory.ProductRepository
}

func (r *vanishingProductRepository) FindByID(ctx context.Context, id string) (*productdomain.Product, error) {
	return nil, productdomain.NewProductNotFoundError(id)
}

func (f *fixture) stockOf(t *testing.T, productID string) int {
	t.Helper()
	p, err := f.productRepo.FindByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock()
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path reserves stock and computes total", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)

		resp, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items:      []OrderItemRequest{{ProductID: laptopID, Quantity: 2}},
		})
		require.NoError(t, err)

		assert.Equal(t, "customer-1", resp.CustomerID)
		assert.Equal(t, string(orderdomain.StatusPending), resp.Status)
		assert.Equal(t, int64(199998), resp.Total.Amount)
		assert.Equal(t, "USD", resp.Total.Currency)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Laptop", resp.Items[0].ProductName)
		assert.Equal(t, int64(99999), resp.Items[0].UnitPrice.Amount)
		assert.Equal(t, int64(199998), resp.Items[0].Subtotal.Amount)

		assert.Equal(t, 3, f.stockOf(t, laptopID))

		// The order is persisted and readable back.
		fetched, err := f.service.GetOrder(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.ID, fetched.ID)
	})

	t.Run("duplicate lines share the stock pool", func(t *testing.T) {
		f := newFixture(t)
		mouseID := f.seedProduct(t, "Mouse", 2999, 5)

		resp, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items: []OrderItemRequest{
				{ProductID: mouseID, Quantity: 3},
				{ProductID: mouseID, Quantity: 2},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, int64(14995), resp.Total.Amount)
		assert.Equal(t, 0, f.stockOf(t, mouseID))
	})

	t.Run("duplicate lines exceeding stock fail", func(t *testing.T) {
		f := newFixture(t)
		mouseID := f.seedProduct(t, "Mouse", 2999, 5)

		_, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items: []OrderItemRequest{
				{ProductID: mouseID, Quantity: 3},
				{ProductID: mouseID, Quantity: 3},
			},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, productdomain.ErrInsufficientStock))
	})

	t.Run("insufficient stock persists nothing", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 1)

		_, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items:      []OrderItemRequest{{ProductID: laptopID, Quantity: 2}},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, productdomain.ErrInsufficientStock))

		assert.Equal(t, 1, f.stockOf(t, laptopID))
		orders, err := f.orderRepo.FindByCustomerID(ctx, "customer-1")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items:      []OrderItemRequest{{ProductID: "missing", Quantity: 1}},
		})
		assert.True(t, errors.Is(err, productdomain.ErrProductNotFound))
	})

	t.Run("no items", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateOrder(ctx, CreateOrderRequest{CustomerID: "customer-1"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()

	placeOrder := func(t *testing.T, f *fixture, productID string, quantity int) string {
		t.Helper()
		resp, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items:      []OrderItemRequest{{ProductID: productID, Quantity: quantity}},
		})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("confirm then complete", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 2)

		confirmed, err := f.service.ConfirmOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, string(orderdomain.StatusConfirmed), confirmed.Status)

		completed, err := f.service.CompleteOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, string(orderdomain.StatusCompleted), completed.Status)

		// Completed orders keep their stock reserved.
		assert.Equal(t, 3, f.stockOf(t, laptopID))
	})

	t.Run("double confirm fails", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 1)

		_, err := f.service.ConfirmOrder(ctx, orderID)
		require.NoError(t, err)
		_, err = f.service.ConfirmOrder(ctx, orderID)
		assert.True(t, errors.Is(err, orderdomain.ErrInvalidOrderState))
	})

	t.Run("complete pending fails", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 1)

		_, err := f.service.CompleteOrder(ctx, orderID)
		assert.True(t, errors.Is(err, orderdomain.ErrInvalidOrderState))
	})

	t.Run("cancel restores stock", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 2)
		assert.Equal(t, 3, f.stockOf(t, laptopID))

		cancelled, err := f.service.CancelOrder(ctx, orderID, "customer request")
		require.NoError(t, err)
		assert.Equal(t, string(orderdomain.StatusCancelled), cancelled.Status)
		assert.Equal(t, 5, f.stockOf(t, laptopID))
	})

	t.Run("cancel skips stock release for vanished product", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 2)
		assert.Equal(t, 3, f.stockOf(t, laptopID))

		// The catalog entry disappears between placement and cancellation.
		service := NewApplicationService(
			f.orderRepo,
			&vanishingProductRepository{f.productRepo},
			memory.NewUnitOfWorkFactory(),
			"USD",
		)

		cancelled, err := service.CancelOrder(ctx, orderID, "customer request")
		require.NoError(t, err)
		assert.Equal(t, string(orderdomain.StatusCancelled), cancelled.Status)

		// The missing product's stock is left as is, never released.
		assert.Equal(t, 3, f.stockOf(t, laptopID))
	})

	t.Run("cancel completed order fails", func(t *testing.T) {
		f := newFixture(t)
		laptopID := f.seedProduct(t, "Laptop", 99999, 5)
		orderID := placeOrder(t, f, laptopID, 1)

		_, err := f.service.ConfirmOrder(ctx, orderID)
		require.NoError(t, err)
		_, err = f.service.CompleteOrder(ctx, orderID)
		require.NoError(t, err)

		_, err = f.service.CancelOrder(ctx, orderID, "")
		assert.True(t, errors.Is(err, orderdomain.ErrInvalidOrderState))
		assert.Equal(t, 4, f.stockOf(t, laptopID))
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.ConfirmOrder(ctx, "missing")
		assert.True(t, errors.Is(err, orderdomain.ErrOrderNotFound))
	})
}

func TestListCustomerOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	laptopID := f.seedProduct(t, "Laptop", 99999, 10)

	for i := 0; i < 3; i++ {
		_, err := f.service.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: "customer-1",
			Items:      []OrderItemRequest{{ProductID: laptopID, Quantity: 1}},
		})
		require.NoError(t, err)
	}
	_, err := f.service.CreateOrder(ctx, CreateOrderRequest{
		CustomerID: "customer-2",
		Items:      []OrderItemRequest{{ProductID: laptopID, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := f.service.ListCustomerOrders(ctx, "customer-1")
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, o := range orders {
		assert.Equal(t, "customer-1", o.CustomerID)
	}

	orders, err = f.service.ListCustomerOrders(ctx, "customer-3")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
