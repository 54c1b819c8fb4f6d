/*
Package shared - domain-layer building blocks common to all subdomains.

Error design:
1. Sentinel errors support type-safe checks via errors.Is().
2. Constructors capture the call stack at creation time; formatting is
   deferred until a log line actually needs it (Stack() method).
3. Domain errors carry no transport concepts such as HTTP status codes.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// Sentinel errors
// Used with errors.Is() to classify failures; they carry no detail themselves.
// ============================================================================

var (
	// ErrNotFound A requested resource does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict A resource conflict (concurrent modification, unique constraint)
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput Input validation failed
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMoney Money constructed or combined into an invalid amount
	ErrInvalidMoney = errors.New("invalid money value")

	// ErrCurrencyMismatch Money arithmetic across different currencies
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// ============================================================================
// Domain error struct
// Carries business context and the stack of the point of failure; supports
// errors.Is() and errors.As() through Unwrap.
// ============================================================================

// DomainError Structured domain error with context and captured stack
type DomainError struct {
	// Err Underlying sentinel, used for errors.Is() checks
	Err error

	// Entity Name of the entity the error relates to (e.g. "order", "product")
	Entity string

	// Message Human-readable description
	Message string

	// Field Optional: field that failed validation
	Field string

	// stack Raw frames captured at creation, formatted on demand
	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap Expose the sentinel for errors.Is() and errors.As()
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack Format the captured stack (only called when a log line needs it)
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// ============================================================================
// Stack capture helpers
// ============================================================================

// CaptureStack Capture the current call stack (exported for subdomain packages)
// skip: frames to skip, usually 3 (Callers, CaptureStack, NewXxxError).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack Format raw frames into strings, filtering runtime internals
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// ============================================================================
// Constructors
// ============================================================================

// NewNotFoundError Create a "not found" domain error
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewConflictError Create a "conflict" domain error
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError Create a "validation failed" domain error
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewInvalidMoneyError Create an invalid-money domain error
func NewInvalidMoneyError(reason string) error {
	return &DomainError{
		Err:     ErrInvalidMoney,
		Entity:  "money",
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewCurrencyMismatchError Create a currency-mismatch domain error
func NewCurrencyMismatchError(left, right string) error {
	return &DomainError{
		Err:     ErrCurrencyMismatch,
		Entity:  "money",
		Message: fmt.Sprintf("currency mismatch: %s vs %s", left, right),
		stack:   CaptureStack(3),
	}
}

// ============================================================================
// Stacker interface
// Lets the API layer extract stacks uniformly from any error that carries one.
// ============================================================================

// Stacker An error that can provide its captured stack
type Stacker interface {
	Stack() []string
}
