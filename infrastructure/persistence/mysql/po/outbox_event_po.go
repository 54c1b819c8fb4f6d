package po

import (
	"encoding/json"
	"time"

	"orderstock/domain/shared"

	"github.com/google/uuid"
)

// OutboxEventPO Outbox event persistence object
// Implements transactional outbox pattern for reliable event publishing
type OutboxEventPO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	AggregateID string    `gorm:"size:64;index;not null"`
	EventType   string    `gorm:"size:100;index;not null"`          // e.g. "order.placed", "product.stock_reserved"
	Payload     string    `gorm:"type:json;not null"`               // JSON serialized event data
	Status      string    `gorm:"size:20;default:PENDING;not null"` // PENDING, PROCESSING, PUBLISHED, FAILED
	RetryCount  int       `gorm:"default:0;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (OutboxEventPO) TableName() string {
	return "outbox_events"
}

// EventStatus Outbox event status enum
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusPublished  EventStatus = "PUBLISHED"
	EventStatusFailed     EventStatus = "FAILED"
)

// FromDomainEvent Convert domain event to outbox persistence object
func FromDomainEvent(event shared.DomainEvent) (*OutboxEventPO, error) {
	payload, err := serializeEventToJSON(event)
	if err != nil {
		return nil, err
	}

	eventID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &OutboxEventPO{
		ID:          eventID.String(),
		AggregateID: event.GetAggregateID(),
		EventType:   event.EventName(),
		Payload:     payload,
		Status:      string(EventStatusPending),
		RetryCount:  0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// serializeEventToJSON Serialize a domain event to a JSON string
// Event structs keep their fields private, so the payload is assembled from
// the getter interfaces each event type exposes.
func serializeEventToJSON(event shared.DomainEvent) (string, error) {
	eventData := map[string]interface{}{
		"event_name":   event.EventName(),
		"aggregate_id": event.GetAggregateID(),
		"occurred_on":  event.OccurredOn(),
	}

	if e, ok := event.(interface{ OrderID() string }); ok {
		eventData["order_id"] = e.OrderID()
	}
	if e, ok := event.(interface{ CustomerID() string }); ok {
		eventData["customer_id"] = e.CustomerID()
	}
	if e, ok := event.(interface{ Reason() string }); ok {
		eventData["reason"] = e.Reason()
	}
	if e, ok := event.(interface{ ProductID() string }); ok {
		eventData["product_id"] = e.ProductID()
	}
	if e, ok := event.(interface{ ProductName() string }); ok {
		eventData["product_name"] = e.ProductName()
	}
	if e, ok := event.(interface{ Quantity() int }); ok {
		eventData["quantity"] = e.Quantity()
	}
	if e, ok := event.(interface{ Remaining() int }); ok {
		eventData["remaining"] = e.Remaining()
	}
	if e, ok := event.(interface{ Stock() int }); ok {
		eventData["stock"] = e.Stock()
	}
	if e, ok := event.(interface{ Price() shared.Money }); ok {
		price := e.Price()
		eventData["price"] = price.Amount()
		eventData["currency"] = price.Currency()
	}

	data, err := json.Marshal(eventData)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ToEventData Extract event data from outbox PO (for debugging/testing)
func (po *OutboxEventPO) ToEventData() (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(po.Payload), &data); err != nil {
		return nil, err
	}
	return data, nil
}
