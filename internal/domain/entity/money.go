package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmountInCents is the largest single transaction amount, 99,999,999.99
const MaxAmountInCents int64 = 9_999_999_999

// MaxBalanceInCents bounds an account balance to what a numeric(14,2) column can hold
const MaxBalanceInCents int64 = 999_999_999_999_99

var maxAmount = decimal.New(MaxAmountInCents, -MaxDecimalPlaces)

// ParseAmount validates a transaction amount and converts it to cents.
// The amount must be a plain decimal, strictly positive, with at most two
// significant fractional digits ("10.500" is accepted, "10.505" is not).
func ParseAmount(amount string) (int64, error) {
	cents, err := parseCents(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

// ParseBalance is ParseAmount that also admits zero, used for opening balances
func ParseBalance(amount string) (int64, error) {
	return parseCents(amount)
}

func parseCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if d.GreaterThan(maxAmount) {
		return 0, errs.ErrAmountOverflow
	}

	return d.Shift(MaxDecimalPlaces).IntPart(), nil
}

// FormatCents renders cents as a decimal string with exactly two places: 1015 -> "10.15"
func FormatCents(amountInCents int64) string {
	return CentsToDecimal(amountInCents).StringFixed(MaxDecimalPlaces)
}

// CentsToDecimal converts cents to the decimal stored in numeric columns
func CentsToDecimal(amountInCents int64) decimal.Decimal {
	return decimal.New(amountInCents, -MaxDecimalPlaces)
}

// DecimalToCents converts a numeric column value back to cents, rounding half away from zero
func DecimalToCents(d decimal.Decimal) int64 {
	return d.Round(MaxDecimalPlaces).Shift(MaxDecimalPlaces).IntPart()
}
