package product

import (
	"time"

	"orderstock/domain/shared"
)

type ProductCreatedEvent struct {
	productID  string
	name       string
	price      shared.Money
	stock      int
	occurredOn time.Time
}

func NewProductCreatedEvent(productID, name string, price shared.Money, stock int) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		productID:  productID,
		name:       name,
		price:      price,
		stock:      stock,
		occurredOn: time.Now(),
	}
}

func (e *ProductCreatedEvent) EventName() string      { return "product.created" }
func (e *ProductCreatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *ProductCreatedEvent) GetAggregateID() string { return e.productID }
func (e *ProductCreatedEvent) ProductID() string      { return e.productID }
func (e *ProductCreatedEvent) ProductName() string    { return e.name }
func (e *ProductCreatedEvent) Price() shared.Money    { return e.price }
func (e *ProductCreatedEvent) Stock() int             { return e.stock }

type StockReservedEvent struct {
	productID  string
	quantity   int
	remaining  int
	occurredOn time.Time
}

func NewStockReservedEvent(productID string, quantity, remaining int) *StockReservedEvent {
	return &StockReservedEvent{
		productID:  productID,
		quantity:   quantity,
		remaining:  remaining,
		occurredOn: time.Now(),
	}
}

func (e *StockReservedEvent) EventName() string      { return "product.stock_reserved" }
func (e *StockReservedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *StockReservedEvent) GetAggregateID() string { return e.productID }
func (e *StockReservedEvent) ProductID() string      { return e.productID }
func (e *StockReservedEvent) Quantity() int          { return e.quantity }
func (e *StockReservedEvent) Remaining() int         { return e.remaining }

type StockReleasedEvent struct {
	productID  string
	quantity   int
	remaining  int
	occurredOn time.Time
}

func NewStockReleasedEvent(productID string, quantity, remaining int) *StockReleasedEvent {
	return &StockReleasedEvent{
		productID:  productID,
		quantity:   quantity,
		remaining:  remaining,
		occurredOn: time.Now(),
	}
}

func (e *StockReleasedEvent) EventName() string      { return "product.stock_released" }
func (e *StockReleasedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *StockReleasedEvent) GetAggregateID() string { return e.productID }
func (e *StockReleasedEvent) ProductID() string      { return e.productID }
func (e *StockReleasedEvent) Quantity() int          { return e.quantity }
func (e *StockReleasedEvent) Remaining() int         { return e.remaining }
