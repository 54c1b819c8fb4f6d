package order

import (
	"orderstock/domain/order"
	"orderstock/domain/shared"
)

func toMoneyResponse(m shared.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount(), Currency: m.Currency()}
}

// toOrderResponse Convert an order aggregate to its output model
// The total is recomputed from the items; it is never stored on the order.
func toOrderResponse(o *order.Order) (*OrderResponse, error) {
	orderItems := o.Items()
	items := make([]OrderItemResponse, len(orderItems))
	for i, item := range orderItems {
		subtotal, err := item.Subtotal()
		if err != nil {
			return nil, err
		}
		items[i] = OrderItemResponse{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   toMoneyResponse(item.UnitPrice()),
			Subtotal:    toMoneyResponse(subtotal),
		}
	}

	total, err := o.CalculateTotal()
	if err != nil {
		return nil, err
	}

	return &OrderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      items,
		Total:      toMoneyResponse(total),
		Status:     string(o.Status()),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}, nil
}
