package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := NewMoney(99999, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(99999), m.Amount())
		assert.Equal(t, "USD", m.Currency())
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewMoney(-1, "USD")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMoney))
	})

	t.Run("bad currency", func(t *testing.T) {
		for _, currency := range []string{"", "US", "usd", "USDX", "U$D"} {
			_, err := NewMoney(100, currency)
			assert.True(t, errors.Is(err, ErrInvalidMoney), "currency %q should be rejected", currency)
		}
	})

	t.Run("zero", func(t *testing.T) {
		m, err := Zero("EUR")
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "EUR", m.Currency())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	usd := func(amount int64) Money {
		m, err := NewMoney(amount, "USD")
		require.NoError(t, err)
		return m
	}

	t.Run("add", func(t *testing.T) {
		sum, err := usd(1000).Add(usd(2500))
		require.NoError(t, err)
		assert.Equal(t, int64(3500), sum.Amount())
	})

	t.Run("add currency mismatch", func(t *testing.T) {
		eur, err := NewMoney(1000, "EUR")
		require.NoError(t, err)
		_, err = usd(1000).Add(eur)
		assert.True(t, errors.Is(err, ErrCurrencyMismatch))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := usd(2500).Subtract(usd(1000))
		require.NoError(t, err)
		assert.Equal(t, int64(1500), diff.Amount())
	})

	t.Run("subtract below zero", func(t *testing.T) {
		_, err := usd(1000).Subtract(usd(2500))
		assert.True(t, errors.Is(err, ErrInvalidMoney))
	})

	t.Run("multiply", func(t *testing.T) {
		product, err := usd(2999).Multiply(3)
		require.NoError(t, err)
		assert.Equal(t, int64(8997), product.Amount())
	})

	t.Run("multiply by zero", func(t *testing.T) {
		product, err := usd(2999).Multiply(0)
		require.NoError(t, err)
		assert.True(t, product.IsZero())
	})

	t.Run("multiply negative factor", func(t *testing.T) {
		_, err := usd(100).Multiply(-2)
		assert.True(t, errors.Is(err, ErrInvalidMoney))
	})

	t.Run("multiply overflow", func(t *testing.T) {
		huge, err := NewMoney(maxInt64/2+1, "USD")
		require.NoError(t, err)
		_, err = huge.Multiply(2)
		assert.True(t, errors.Is(err, ErrInvalidMoney))
	})

	t.Run("immutability", func(t *testing.T) {
		original := usd(1000)
		_, err := original.Add(usd(500))
		require.NoError(t, err)
		assert.Equal(t, int64(1000), original.Amount())
	})
}

func TestMoneyComparisons(t *testing.T) {
	small, err := NewMoney(100, "USD")
	require.NoError(t, err)
	big, err := NewMoney(200, "USD")
	require.NoError(t, err)
	eur, err := NewMoney(100, "EUR")
	require.NoError(t, err)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gte, err := big.GreaterThanOrEqual(small)
	require.NoError(t, err)
	assert.True(t, gte)

	lte, err := small.LessThanOrEqual(small)
	require.NoError(t, err)
	assert.True(t, lte)

	gt, err := small.GreaterThan(big)
	require.NoError(t, err)
	assert.False(t, gt)

	_, err = small.LessThan(eur)
	assert.True(t, errors.Is(err, ErrCurrencyMismatch))

	assert.True(t, small.Equals(small))
	assert.False(t, small.Equals(big))
	assert.False(t, small.Equals(eur))
}

func TestMoneyString(t *testing.T) {
	m, err := NewMoney(99999, "USD")
	require.NoError(t, err)
	assert.Equal(t, "999.99 USD", m.String())

	m, err = NewMoney(5, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.05 EUR", m.String())
}
