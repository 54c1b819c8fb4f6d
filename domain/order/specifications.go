package order

import (
	"context"

	"orderstock/domain/shared"
)

// ByCustomerIDSpecification Match orders placed by a given customer
type ByCustomerIDSpecification struct {
	customerID string
}

func NewByCustomerIDSpecification(customerID string) *ByCustomerIDSpecification {
	return &ByCustomerIDSpecification{customerID: customerID}
}

func (s *ByCustomerIDSpecification) IsSatisfiedBy(_ context.Context, o *Order) bool {
	return o.CustomerID() == s.customerID
}

// ByStatusSpecification Match orders in a given lifecycle state
type ByStatusSpecification struct {
	status Status
}

func NewByStatusSpecification(status Status) *ByStatusSpecification {
	return &ByStatusSpecification{status: status}
}

func (s *ByStatusSpecification) IsSatisfiedBy(_ context.Context, o *Order) bool {
	return o.Status() == s.status
}

var (
	_ shared.Specification[*Order] = (*ByCustomerIDSpecification)(nil)
	_ shared.Specification[*Order] = (*ByStatusSpecification)(nil)
)
