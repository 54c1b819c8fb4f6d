/*
Package persistence Storage adapters and the context plumbing they share.

Transactions travel through context.Context: the unit of work opens a GORM
transaction and attaches it, repositories pick it up with TxFromContext so a
use case's reads and writes all land in the same transaction.
*/
package persistence

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing the transaction
type txKey struct{}

// TxFromContext retrieves the GORM transaction from context
// Returns nil if no transaction is present
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// ContextWithTx returns a new context with the GORM transaction attached
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// requestIDKey is the context key for the request id set by the API middleware
type requestIDKey struct{}

// RequestIDFromContext retrieves the request id from context
// Returns "" if none is present (e.g. background workers)
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request id
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}
