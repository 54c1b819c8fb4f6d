package shared

// AggregateRoot Entry point of an aggregate, maintaining its consistency boundary
// Properties:
// 1. Globally unique identity
// 2. Maintains the invariants of everything inside the aggregate
// 3. All modifications go through the aggregate root
// 4. Records domain events for the unit of work to collect
type AggregateRoot interface {
	// ID Return the globally unique identifier
	ID() string

	// Version Return the current version, used for optimistic concurrency control
	Version() int

	// PullEvents Return and clear the recorded domain events
	// Standard domain event pattern: the aggregate records events, the unit of
	// work pulls them inside the transaction and writes them to the outbox.
	PullEvents() []DomainEvent
}

// Entity Object with a unique identity
// Entities differ from value objects: equality is decided by ID, not by
// attribute values, and their lifecycle is typically long.
type Entity interface {
	ID() string
}

// ValueObject Immutable object identified by its attribute values
// Go cannot enforce immutability; the convention is private fields, no
// setters, and operations that return fresh values.
type ValueObject interface {
	// Equals Compare two value objects by content
	Equals(other interface{}) bool
}
