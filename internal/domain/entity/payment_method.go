package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// PaymentMethod is the closed set of funding sources a transaction can use
type PaymentMethod string

const (
	MethodGCash      PaymentMethod = "gcash"
	MethodVisa       PaymentMethod = "visa"
	MethodMastercard PaymentMethod = "mastercard"
	MethodPayPal     PaymentMethod = "paypal"
)

// PaymentMethods lists every supported method in display order
var PaymentMethods = []PaymentMethod{MethodGCash, MethodVisa, MethodMastercard, MethodPayPal}

// ParsePaymentMethod normalizes and validates a method name
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(method)))
	if !m.IsValid() {
		return "", errs.NewValidationError("method", "unknown payment method "+method, errs.ErrInvalidPaymentMethod)
	}
	return m, nil
}

// IsValid reports whether m is one of the supported methods
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
