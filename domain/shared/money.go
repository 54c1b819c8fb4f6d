package shared

import "fmt"

// Money Value object - represents an amount of money
// Amounts are stored in the smallest currency unit (e.g. cents) to avoid
// floating point drift; the currency is a 3-letter uppercase ISO code.
// Every operation returns a new value, the receiver is never mutated.
type Money struct {
	amount   int64
	currency string
}

// NewMoney Create a new Money value object
// Fails with ErrInvalidMoney when amount is negative or currency is not a
// 3-letter uppercase code.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, NewInvalidMoneyError(fmt.Sprintf("amount must not be negative, got %d", amount))
	}
	if !validCurrency(currency) {
		return Money{}, NewInvalidMoneyError("currency must be a 3-letter uppercase code, got " + currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// Zero Create a zero amount in the given currency
func Zero(currency string) (Money, error) {
	return NewMoney(0, currency)
}

func validCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return false
		}
	}
	return true
}

// Amount Get the amount in minor currency units
func (m Money) Amount() int64 {
	return m.amount
}

// Currency Get the currency code
func (m Money) Currency() string {
	return m.currency
}

// IsZero Report whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add Sum two amounts, returning a new Money value
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, NewCurrencyMismatchError(m.currency, other.currency)
	}
	sum := m.amount + other.amount
	if sum < m.amount {
		return Money{}, NewInvalidMoneyError("amount overflow on add")
	}
	return Money{amount: sum, currency: m.currency}, nil
}

// Subtract Subtract another amount, returning a new Money value
// A result below zero violates the Money invariant and fails.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, NewCurrencyMismatchError(m.currency, other.currency)
	}
	if other.amount > m.amount {
		return Money{}, NewInvalidMoneyError(fmt.Sprintf("subtraction result would be negative: %d - %d", m.amount, other.amount))
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Multiply Multiply the amount by a non-negative scalar
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, NewInvalidMoneyError(fmt.Sprintf("multiplication factor must not be negative, got %d", factor))
	}
	if factor != 0 && m.amount > maxInt64/int64(factor) {
		return Money{}, NewInvalidMoneyError("amount overflow on multiply")
	}
	return Money{amount: m.amount * int64(factor), currency: m.currency}, nil
}

const maxInt64 = int64(^uint64(0) >> 1)

// LessThan Report whether this amount is strictly smaller
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, NewCurrencyMismatchError(m.currency, other.currency)
	}
	return m.amount < other.amount, nil
}

// LessThanOrEqual Report whether this amount is smaller or equal
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, NewCurrencyMismatchError(m.currency, other.currency)
	}
	return m.amount <= other.amount, nil
}

// GreaterThan Report whether this amount is strictly greater
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, NewCurrencyMismatchError(m.currency, other.currency)
	}
	return m.amount > other.amount, nil
}

// GreaterThanOrEqual Report whether this amount is greater or equal
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, NewCurrencyMismatchError(m.currency, other.currency)
	}
	return m.amount >= other.amount, nil
}

// Equals Compare two Money value objects by content
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String Human-readable form, mostly for logs and error messages
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}
