// Package errors Application error codes and the domain-to-application mapping
//
// Domain errors carry no transport concepts; this package assigns each one a
// stable machine-readable code and an HTTP status, so controllers never
// inspect domain sentinels themselves.
package errors

import (
	"errors"
	"fmt"

	"orderstock/domain/order"
	"orderstock/domain/product"
	"orderstock/domain/shared"
)

// ErrorCode Stable machine-readable error code exposed to API clients
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeProductNotFound        ErrorCode = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound          ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidProduct         ErrorCode = "INVALID_PRODUCT"
	CodeInsufficientStock      ErrorCode = "INSUFFICIENT_STOCK"
	CodeInvalidOrderState      ErrorCode = "INVALID_ORDER_STATE"
	CodeEmptyOrder             ErrorCode = "EMPTY_ORDER"
	CodeInvalidQuantity        ErrorCode = "INVALID_QUANTITY"
	CodeInvalidMoney           ErrorCode = "INVALID_MONEY"
	CodeCurrencyMismatch       ErrorCode = "CURRENCY_MISMATCH"
	CodeConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
)

// AppError Application-level error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New Create a new application error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap Wrap an underlying error with a code and message
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common constructors

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is Check whether the error carries a specific code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError Convert any error to an AppError
// Non-application errors become CodeInternal with a generic message so raw
// details never leak to clients.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// domainCode maps a domain sentinel to its application error code.
var domainCodes = []struct {
	sentinel error
	code     ErrorCode
}{
	{product.ErrProductNotFound, CodeProductNotFound},
	{product.ErrInsufficientStock, CodeInsufficientStock},
	{product.ErrInvalidProduct, CodeInvalidProduct},
	{product.ErrConcurrentModification, CodeConcurrentModification},
	{order.ErrOrderNotFound, CodeOrderNotFound},
	{order.ErrInvalidOrderState, CodeInvalidOrderState},
	{order.ErrEmptyOrder, CodeEmptyOrder},
	{order.ErrConcurrentModification, CodeConcurrentModification},
	// Order before product here does not matter; the quantity sentinels are
	// distinct values, both mapping to the same code.
	{order.ErrInvalidQuantity, CodeInvalidQuantity},
	{product.ErrInvalidQuantity, CodeInvalidQuantity},
	{shared.ErrInvalidMoney, CodeInvalidMoney},
	{shared.ErrCurrencyMismatch, CodeCurrencyMismatch},
	{shared.ErrInvalidInput, CodeValidation},
	{shared.ErrNotFound, CodeNotFound},
	{shared.ErrConflict, CodeConflict},
}

// FromDomainError Map a domain error to an application error
// Matching uses errors.Is against the domain sentinels, never message text.
// The domain message is preserved so clients see the specific detail
// (e.g. available vs requested stock).
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range domainCodes {
		if errors.Is(err, m.sentinel) {
			return Wrap(err, m.code, err.Error())
		}
	}

	return Wrap(err, CodeInternal, "internal server error")
}
