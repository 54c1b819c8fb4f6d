package po

import (
	"time"

	"orderstock/domain/order"
	"orderstock/domain/shared"
)

// OrderPO Order persistence object
// Only used for database mapping, contains no business logic.
// GORM associations are prohibited here; order items are managed manually to
// keep the aggregate boundary explicit. The order total is never stored, it
// is always recomputed from the items.
type OrderPO struct {
	ID         string    `gorm:"primaryKey;size:64"`
	CustomerID string    `gorm:"size:64;index;not null"` // Only the ID, no customer association
	Currency   string    `gorm:"size:3;not null"`
	Status     string    `gorm:"size:20;not null"`
	Version    int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO Order item persistence object
// ProductName and UnitPrice are snapshots taken when the line was added.
type OrderItemPO struct {
	ID           string `gorm:"primaryKey;size:64"`
	OrderID      string `gorm:"size:64;index;not null"` // Only the ID, no GORM association
	ProductID    string `gorm:"size:64;not null"`
	ProductName  string `gorm:"size:255;not null"`
	Quantity     int    `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	UnitCurrency string `gorm:"size:3;not null"`
}

// TableName Specify table name
func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain Convert domain model to persistence objects
// The stored version is the post-save version (current + 1); the repository
// uses the pre-save version as the optimistic lock guard.
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	orderPO := &OrderPO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Currency:   o.Currency(),
		Status:     string(o.Status()),
		Version:    o.Version() + 1,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			ID:           item.ID(),
			OrderID:      o.ID(),
			ProductID:    item.ProductID(),
			ProductName:  item.ProductName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Amount(),
			UnitCurrency: item.UnitPrice().Currency(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain Convert persistence objects to the domain model
func (po *OrderPO) ToDomain(itemPOs []OrderItemPO) (*order.Order, error) {
	items := make([]order.ItemReconstructionDTO, len(itemPOs))
	for i, itemPO := range itemPOs {
		unitPrice, err := shared.NewMoney(itemPO.UnitPrice, itemPO.UnitCurrency)
		if err != nil {
			return nil, err
		}
		items[i] = order.ItemReconstructionDTO{
			ID:          itemPO.ID,
			ProductID:   itemPO.ProductID,
			ProductName: itemPO.ProductName,
			Quantity:    itemPO.Quantity,
			UnitPrice:   unitPrice,
		}
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:         po.ID,
		CustomerID: po.CustomerID,
		Currency:   po.Currency,
		Items:      items,
		Status:     order.Status(po.Status),
		Version:    po.Version,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}), nil
}
