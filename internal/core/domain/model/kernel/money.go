package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/guard"
)

// DefaultCurrencyCode is resolved when a caller provides an amount without a currency.
const DefaultCurrencyCode = "RUB"

var (
	// ErrAmountIsNegative is returned when constructing Money with a negative amount.
	ErrAmountIsNegative = errors.New("Amount cannot be negative")

	// ErrCurrencyMismatch is returned when arithmetic mixes two different currencies.
	ErrCurrencyMismatch = errors.New("Cannot add different currencies")

	// ErrCurrencyIsNotConstructed is returned when a zero-value Currency is used.
	ErrCurrencyIsNotConstructed = errors.New("Currency must be created via NewCurrency constructor")

	// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney constructor")
)

// CurrencyCatalog reports whether a currency code belongs to the reference
// currency set. The catalog is external state (a database-backed lookup), so
// Money and Currency construction can fail for reasons beyond input format.
// The dependency is passed in explicitly rather than resolved from a global.
type CurrencyCatalog interface {
	HasCurrency(code string) bool
}

// Currency is a validated currency code drawn from the reference currency set.
type Currency struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency creates a Currency, validating the code against the catalog.
func NewCurrency(code string, catalog CurrencyCatalog) (Currency, error) {
	c := Currency{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setCode(code, catalog); err != nil {
		return Currency{}, err
	}

	return c, nil
}

// Validate ensures the Currency was created through the constructor.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the currency code, e.g. "RUB".
func (c Currency) Code() string {
	return c.code
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

func (c *Currency) setCode(code string, catalog CurrencyCatalog) error {
	if catalog == nil || !catalog.HasCurrency(code) {
		return fmt.Errorf("Invalid currency %s", code)
	}

	c.code = code
	return nil
}

// Money is a monetary amount in minor units paired with a Currency.
// Money is immutable; arithmetic returns new instances.
//
// Example:
//
//	price, err := kernel.NewMoney(6500, &currency, catalog)
//	if err != nil {
//	    // amount negative or currency not in the reference set
//	}
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates Money from an amount in minor units and an optional
// currency. When currency is nil the default currency is resolved through the
// catalog. The currency code is re-checked against the catalog even when a
// constructed Currency is supplied, so Money never carries a code that has
// been removed from the reference set.
func NewMoney(amount int64, currency *Currency, catalog CurrencyCatalog) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setAmount(amount),
		m.setCurrency(currency, catalog),
	); err != nil {
		return Money{}, err
	}

	return m, nil
}

// RestoreMoney reconstructs Money from persisted state. The currency code is
// trusted as already validated at write time, so no catalog lookup happens.
func RestoreMoney(amount int64, currencyCode string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	m.currency = Currency{
		code:  currencyCode,
		guard: guard.NewConstructorGuard(),
	}
	return m, nil
}

// Validate ensures the Money was created through the constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the validated currency.
func (m Money) Currency() Currency {
	return m.currency
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if !m.currency.IsEqual(other.currency) {
		return Money{}, ErrCurrencyMismatch
	}

	sum := m
	sum.amount += other.amount
	return sum, nil
}

// IsEqual compares amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency.IsEqual(other.currency)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency *Currency, catalog CurrencyCatalog) error {
	if currency == nil {
		c, err := NewCurrency(DefaultCurrencyCode, catalog)
		if err != nil {
			return err
		}
		m.currency = c
		return nil
	}

	if err := currency.Validate(); err != nil {
		return err
	}
	if catalog == nil || !catalog.HasCurrency(currency.Code()) {
		return fmt.Errorf("Invalid currency %s", currency.Code())
	}

	m.currency = *currency
	return nil
}
