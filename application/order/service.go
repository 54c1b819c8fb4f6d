/*
Package order Application Layer - order business process orchestration

Responsibilities:
1. Receive requests from controllers
2. Load aggregates, call their behavior methods
3. Coordinate the order and catalog aggregates (stock reservation/release)
4. Use a unit of work per request for transactions and event collection
5. Map aggregates to response DTOs

Application services never publish events directly. The unit of work collects
them from registered aggregates and stores them in the outbox before commit;
a background worker publishes them afterwards.
*/
package order

import (
	"context"
	"errors"

	"orderstock/domain/order"
	"orderstock/domain/product"
	"orderstock/domain/shared"
	"orderstock/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService Order application service
type ApplicationService struct {
	orderRepo   order.Repository
	productRepo product.Repository
	uowFactory  shared.UnitOfWorkFactory
	currency    string
}

// NewApplicationService Create the order application service
// currency is the 3-letter code all new orders are priced in.
func NewApplicationService(
	orderRepo order.Repository,
	productRepo product.Repository,
	uowFactory shared.UnitOfWorkFactory,
	currency string,
) *ApplicationService {
	return &ApplicationService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		uowFactory:  uowFactory,
		currency:    currency,
	}
}

// CreateOrder Place a new order and reserve stock for every line
//
// Runs inside one unit of work, so either all reservations and the order
// commit together or nothing does. Products are cached per request: when the
// same product appears on several lines, later lines see the stock already
// reserved by earlier ones, and the product is written once with the combined
// decrement. The whole transaction is retried by the unit of work on
// concurrent stock conflicts.
func (s *ApplicationService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("Order", "items", "order must contain at least one item")
	}

	var o *order.Order

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = order.NewOrder(s.orderRepo.NextIdentity(), req.CustomerID, s.currency)
		if err != nil {
			return err
		}

		// Per-request cache so duplicate lines for one product share state.
		products := make(map[string]*product.Product)
		for _, item := range req.Items {
			p, ok := products[item.ProductID]
			if !ok {
				p, err = s.productRepo.FindByID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				products[item.ProductID] = p
			}

			if err := p.ReserveStock(item.Quantity); err != nil {
				return err
			}
			if err := o.AddItem(p.ID(), p.Name(), item.Quantity, p.Price()); err != nil {
				return err
			}
		}

		for _, p := range products {
			if err := s.productRepo.Save(ctx, p); err != nil {
				return err
			}
			uow.RegisterDirty(p)
		}

		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		uow.RegisterNew(o)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toOrderResponse(o)
}

// ConfirmOrder Move a pending order to CONFIRMED
func (s *ApplicationService) ConfirmOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	var o *order.Order

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Confirm(); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		uow.RegisterDirty(o)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toOrderResponse(o)
}

// CancelOrder Cancel an order and return its reserved stock to the catalog
//
// Stock release is a compensation: a product that has disappeared from the
// catalog since the order was placed is logged and skipped rather than
// failing the whole cancellation.
func (s *ApplicationService) CancelOrder(ctx context.Context, orderID, reason string) (*OrderResponse, error) {
	var o *order.Order

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Cancel(reason); err != nil {
			return err
		}

		// Combine duplicate lines so each product is loaded and saved once.
		quantities := make(map[string]int)
		for _, item := range o.Items() {
			quantities[item.ProductID()] += item.Quantity()
		}

		for productID, quantity := range quantities {
			p, err := s.productRepo.FindByID(ctx, productID)
			if err != nil {
				if errors.Is(err, product.ErrProductNotFound) {
					logger.Warn("skipping stock release for missing product",
						zap.String("order_id", orderID),
						zap.String("product_id", productID),
						zap.Int("quantity", quantity))
					continue
				}
				return err
			}
			if err := p.ReleaseStock(quantity); err != nil {
				return err
			}
			if err := s.productRepo.Save(ctx, p); err != nil {
				return err
			}
			uow.RegisterDirty(p)
		}

		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		uow.RegisterDirty(o)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toOrderResponse(o)
}

// CompleteOrder Move a confirmed order to COMPLETED
func (s *ApplicationService) CompleteOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	var o *order.Order

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Complete(); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		uow.RegisterDirty(o)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toOrderResponse(o)
}

// GetOrder Fetch one order
func (s *ApplicationService) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o)
}

// ListCustomerOrders List all orders placed by a customer
func (s *ApplicationService) ListCustomerOrders(ctx context.Context, customerID string) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		resp, err := toOrderResponse(o)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}
	return responses, nil
}
