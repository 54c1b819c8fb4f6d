package shared

import "context"

// UnitOfWork Manages the transaction boundary and aggregate event collection.
// Execute runs fn inside one atomic scope: every repository Save made through
// the context commits or rolls back together, and events pulled from the
// registered aggregates are persisted to the outbox before commit.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	RegisterNew(aggregate AggregateRoot)
	RegisterDirty(aggregate AggregateRoot)
	RegisterRemoved(aggregate AggregateRoot)
}

// UnitOfWorkFactory Creates one UnitOfWork per use case
// A UnitOfWork accumulates per-request state, so instances must not be shared
// across concurrent requests.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// OutboxRepository Persists domain events inside the surrounding transaction
type OutboxRepository interface {
	SaveEvent(ctx context.Context, event DomainEvent) error
}
