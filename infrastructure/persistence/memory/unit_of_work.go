package memory

import (
	"context"

	"orderstock/domain/shared"
	"orderstock/pkg/logger"

	"go.uber.org/zap"
)

// UnitOfWork In-memory unit of work
// There is no transaction to manage; the business function runs directly and
// events from registered aggregates are logged instead of queued in an outbox.
// Writes that already happened are not rolled back on failure, which is an
// accepted limitation of the development adapter.
type UnitOfWork struct {
	aggregates []shared.AggregateRoot
}

// NewUnitOfWork Create an in-memory unit of work
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		aggregates: make([]shared.AggregateRoot, 0),
	}
}

// Execute Run the business function and log events from registered aggregates
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = make([]shared.AggregateRoot, 0)

	if err := fn(ctx); err != nil {
		return err
	}

	for _, agg := range u.aggregates {
		for _, event := range agg.PullEvents() {
			logger.Info("Domain event",
				zap.String("event_name", event.EventName()),
				zap.String("aggregate_id", event.GetAggregateID()),
				zap.Time("occurred_on", event.OccurredOn()),
			)
		}
	}

	return nil
}

// RegisterNew registers a newly created aggregate root for event collection
func (u *UnitOfWork) RegisterNew(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// RegisterDirty registers a modified aggregate root for event collection
func (u *UnitOfWork) RegisterDirty(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// RegisterRemoved registers a deleted aggregate root for event collection
func (u *UnitOfWork) RegisterRemoved(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// Compile-time check that UnitOfWork implements shared.UnitOfWork
var _ shared.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWorkFactory Creates one in-memory unit of work per request
type UnitOfWorkFactory struct{}

// NewUnitOfWorkFactory Create the factory
func NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{}
}

// New Create a fresh unit of work
func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork()
}

var _ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
