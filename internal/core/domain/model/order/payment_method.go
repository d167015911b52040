package order

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// PaymentMethod represents how the customer pays for an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// CashOnDelivery means payment is collected at the door.
	CashOnDelivery

	// Online means payment was taken through the storefront.
	Online
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their
// canonical string representations.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "COD",
		Online:         "Online",
	}
}

// PaymentMethodFromString parses a payment method from its string form.
//
// Storefront payloads are not consistent about casing or wording, so parsing
// doubles as the normalization step at the persistence boundary: every
// heterogeneous source value is mapped onto one canonical tagged value here
// instead of being checked ad hoc at call sites.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", "cash on delivery", "cash_on_delivery":
		return CashOnDelivery, nil
	case "online", "prepaid":
		return Online, nil
	default:
		return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%q is not a valid payment method", s),
		)
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the canonical name of the payment method.
// Implements the fmt.Stringer interface.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
