package mysql

import (
	"orderstock/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// AutoMigrate Create or update the schema for all persistence objects
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.ProductPO{},
		&po.OrderPO{},
		&po.OrderItemPO{},
		&po.OutboxEventPO{},
	)
}
