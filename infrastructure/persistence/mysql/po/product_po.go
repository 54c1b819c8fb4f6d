package po

import (
	"time"

	"orderstock/domain/product"
	"orderstock/domain/shared"
)

// ProductPO Product persistence object
type ProductPO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1024"`
	Price       int64     `gorm:"not null"`
	Currency    string    `gorm:"size:3;not null"`
	Stock       int       `gorm:"not null"`
	Version     int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (ProductPO) TableName() string {
	return "products"
}

// FromProductDomain Convert domain model to persistence object
// The stored version is the post-save version (current + 1); the repository
// uses the pre-save version as the optimistic lock guard.
func FromProductDomain(p *product.Product) *ProductPO {
	return &ProductPO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		Currency:    p.Price().Currency(),
		Stock:       p.Stock(),
		Version:     p.Version() + 1,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// ToDomain Convert persistence object to the domain model
func (po *ProductPO) ToDomain() (*product.Product, error) {
	price, err := shared.NewMoney(po.Price, po.Currency)
	if err != nil {
		return nil, err
	}
	return product.RebuildFromDTO(product.ReconstructionDTO{
		ID:          po.ID,
		Name:        po.Name,
		Description: po.Description,
		Price:       price,
		Stock:       po.Stock,
		Version:     po.Version,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}), nil
}
