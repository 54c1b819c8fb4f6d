package order

import "time"

type OrderPlacedEvent struct {
	orderID    string
	customerID string
	occurredOn time.Time
}

func NewOrderPlacedEvent(orderID, customerID string) *OrderPlacedEvent {
	return &OrderPlacedEvent{orderID: orderID, customerID: customerID, occurredOn: time.Now()}
}

func (e *OrderPlacedEvent) EventName() string      { return "order.placed" }
func (e *OrderPlacedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderPlacedEvent) GetAggregateID() string { return e.orderID }
func (e *OrderPlacedEvent) OrderID() string        { return e.orderID }
func (e *OrderPlacedEvent) CustomerID() string     { return e.customerID }

type OrderConfirmedEvent struct {
	orderID    string
	customerID string
	occurredOn time.Time
}

func NewOrderConfirmedEvent(orderID, customerID string) *OrderConfirmedEvent {
	return &OrderConfirmedEvent{orderID: orderID, customerID: customerID, occurredOn: time.Now()}
}

func (e *OrderConfirmedEvent) EventName() string      { return "order.confirmed" }
func (e *OrderConfirmedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderConfirmedEvent) GetAggregateID() string { return e.orderID }
func (e *OrderConfirmedEvent) OrderID() string        { return e.orderID }
func (e *OrderConfirmedEvent) CustomerID() string     { return e.customerID }

type OrderCancelledEvent struct {
	orderID    string
	customerID string
	reason     string
	occurredOn time.Time
}

func NewOrderCancelledEvent(orderID, customerID, reason string) *OrderCancelledEvent {
	return &OrderCancelledEvent{orderID: orderID, customerID: customerID, reason: reason, occurredOn: time.Now()}
}

func (e *OrderCancelledEvent) EventName() string      { return "order.cancelled" }
func (e *OrderCancelledEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderCancelledEvent) GetAggregateID() string { return e.orderID }
func (e *OrderCancelledEvent) OrderID() string        { return e.orderID }
func (e *OrderCancelledEvent) CustomerID() string     { return e.customerID }
func (e *OrderCancelledEvent) Reason() string         { return e.reason }

type OrderCompletedEvent struct {
	orderID    string
	customerID string
	occurredOn time.Time
}

func NewOrderCompletedEvent(orderID, customerID string) *OrderCompletedEvent {
	return &OrderCompletedEvent{orderID: orderID, customerID: customerID, occurredOn: time.Now()}
}

func (e *OrderCompletedEvent) EventName() string      { return "order.completed" }
func (e *OrderCompletedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderCompletedEvent) GetAggregateID() string { return e.orderID }
func (e *OrderCompletedEvent) OrderID() string        { return e.orderID }
func (e *OrderCompletedEvent) CustomerID() string     { return e.customerID }
