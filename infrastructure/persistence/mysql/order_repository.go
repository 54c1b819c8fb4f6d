package mysql

import (
	"context"
	"errors"

	"orderstock/domain/order"
	"orderstock/infrastructure/persistence"
	"orderstock/infrastructure/persistence/mysql/po"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository MySQL/GORM implementation of the order repository
// Repositories only persist aggregate roots, they never publish events.
// GORM association features are prohibited to keep aggregate boundaries explicit.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository Create order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// NextIdentity Generate a new order ID
func (r *OrderRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Save Save order (create or update)
// Order items are managed manually (delete then insert), never through GORM
// associations. Updates are guarded by the optimistic lock version: a stale
// write affects zero rows and fails with ErrConcurrentModification.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	if tx := persistence.TxFromContext(ctx); tx != nil {
		return r.saveWithTx(tx, o, orderPO, itemPOs)
	}

	// No UoW transaction - create our own for atomicity
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithTx(tx, o, orderPO, itemPOs)
	})
}

func (r *OrderRepository) saveWithTx(tx *gorm.DB, o *order.Order, orderPO *po.OrderPO, itemPOs []po.OrderItemPO) error {
	if o.IsNew() {
		if err := tx.Create(orderPO).Error; err != nil {
			return err
		}
	} else {
		result := tx.Model(&po.OrderPO{}).
			Where("id = ? AND version = ?", o.ID(), o.Version()).
			Updates(map[string]interface{}{
				"customer_id": orderPO.CustomerID,
				"currency":    orderPO.Currency,
				"status":      orderPO.Status,
				"version":     orderPO.Version,
				"updated_at":  orderPO.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Either the row is gone or another transaction bumped the version.
			var count int64
			if err := tx.Model(&po.OrderPO{}).Where("id = ?", o.ID()).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return order.NewOrderNotFoundError(o.ID())
			}
			return order.NewConcurrentModificationError(o.ID())
		}
	}

	// Delete old order items (simple strategy: delete then insert)
	if err := tx.Where("order_id = ?", o.ID()).Delete(&po.OrderItemPO{}).Error; err != nil {
		return err
	}
	if len(itemPOs) > 0 {
		if err := tx.Create(&itemPOs).Error; err != nil {
			return err
		}
	}

	o.IncrementVersionForSave()
	return nil
}

// FindByID Find order by ID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.getDB(ctx)
	var orderPO po.OrderPO

	result := db.First(&orderPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, result.Error
	}

	// Query order items manually (no Preload, keeps aggregate boundaries clear)
	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id = ?", id).Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	return orderPO.ToDomain(itemPOs)
}

// FindByCustomerID Find all orders placed by a customer, newest first
func (r *OrderRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*order.Order, error) {
	db := r.getDB(ctx)
	var orderPOs []po.OrderPO

	if err := db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderPOs))
	for i, orderPO := range orderPOs {
		var itemPOs []po.OrderItemPO
		if err := db.Where("order_id = ?", orderPO.ID).Find(&itemPOs).Error; err != nil {
			return nil, err
		}
		o, err := orderPO.ToDomain(itemPOs)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}

	return orders, nil
}

// Remove Delete an order and its items
func (r *OrderRepository) Remove(ctx context.Context, id string) error {
	db := r.getDB(ctx)

	result := db.Where("id = ?", id).Delete(&po.OrderPO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.NewOrderNotFoundError(id)
	}

	return db.Where("order_id = ?", id).Delete(&po.OrderItemPO{}).Error
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
