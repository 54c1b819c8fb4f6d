package product

import "time"

// CreateProductRequest Create-product input, price in minor currency units
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Stock       int    `json:"stock" binding:"min=0"`
}

// ProductResponse Product output model
type ProductResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       MoneyResponse `json:"price"`
	Stock       int           `json:"stock"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MoneyResponse Money output model, amount in minor currency units
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
