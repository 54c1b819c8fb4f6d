// Package product Application Layer - catalog use cases
package product

import (
	"context"

	"orderstock/domain/product"
	"orderstock/domain/shared"
)

// ApplicationService Catalog application service
type ApplicationService struct {
	productRepo product.Repository
	uowFactory  shared.UnitOfWorkFactory
}

// NewApplicationService Create the catalog application service
func NewApplicationService(productRepo product.Repository, uowFactory shared.UnitOfWorkFactory) *ApplicationService {
	return &ApplicationService{
		productRepo: productRepo,
		uowFactory:  uowFactory,
	}
}

// CreateProduct Add a product to the catalog
func (s *ApplicationService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, err := shared.NewMoney(req.Price, req.Currency)
	if err != nil {
		return nil, err
	}

	var p *product.Product

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		p, err = product.NewProduct(s.productRepo.NextIdentity(), req.Name, req.Description, price, req.Stock)
		if err != nil {
			return err
		}

		if err := s.productRepo.Save(ctx, p); err != nil {
			return err
		}
		uow.RegisterNew(p)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toProductResponse(p), nil
}

// GetProduct Fetch one product
func (s *ApplicationService) GetProduct(ctx context.Context, productID string) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListProducts List the whole catalog
func (s *ApplicationService) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price: MoneyResponse{
			Amount:   p.Price().Amount(),
			Currency: p.Price().Currency(),
		},
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
