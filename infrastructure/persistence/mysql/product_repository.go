package mysql

import (
	"context"
	"errors"

	"orderstock/domain/product"
	"orderstock/infrastructure/persistence"
	"orderstock/infrastructure/persistence/mysql/po"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository MySQL/GORM implementation of the product repository
// Stock updates are guarded by the optimistic lock version so two concurrent
// reservations can never both decrement from the same snapshot.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository Create product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// NextIdentity Generate a new product ID
func (r *ProductRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Save Save product (create or update)
// A stale update affects zero rows and fails with ErrConcurrentModification;
// the unit of work retries the whole use case in that case.
func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	db := r.getDB(ctx)
	productPO := po.FromProductDomain(p)

	if p.IsNew() {
		if err := db.Create(productPO).Error; err != nil {
			return err
		}
		p.IncrementVersionForSave()
		return nil
	}

	result := db.Model(&po.ProductPO{}).
		Where("id = ? AND version = ?", p.ID(), p.Version()).
		Updates(map[string]interface{}{
			"name":        productPO.Name,
			"description": productPO.Description,
			"price":       productPO.Price,
			"currency":    productPO.Currency,
			"stock":       productPO.Stock,
			"version":     productPO.Version,
			"updated_at":  productPO.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&po.ProductPO{}).Where("id = ?", p.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return product.NewProductNotFoundError(p.ID())
		}
		return product.NewConcurrentModificationError(p.ID())
	}

	p.IncrementVersionForSave()
	return nil
}

// FindByID Find product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	db := r.getDB(ctx)
	var productPO po.ProductPO

	result := db.First(&productPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.NewProductNotFoundError(id)
		}
		return nil, result.Error
	}

	return productPO.ToDomain()
}

// FindAll List the whole catalog
func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	db := r.getDB(ctx)
	var productPOs []po.ProductPO

	if err := db.Order("created_at ASC").Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, len(productPOs))
	for i, productPO := range productPOs {
		p, err := productPO.ToDomain()
		if err != nil {
			return nil, err
		}
		products[i] = p
	}

	return products, nil
}

// Compile-time interface implementation check
var _ product.Repository = (*ProductRepository)(nil)
