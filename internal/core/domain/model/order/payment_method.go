package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod is how the order is paid. Cash-on-delivery orders cannot
// reach their terminal status until the COD reconciler reports the payment
// completed.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// Prepaid means payment settled before fulfillment began.
	Prepaid

	// CashOnDelivery ("contraentrega") means the messenger collects cash or
	// a transfer at the point of delivery.
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		Prepaid:              "prepaid",
		CashOnDelivery:       "cash_on_delivery",
	}
}

// PaymentMethodFromString parses a payment method, accepting the legacy
// "contraentrega" wire value as cash-on-delivery.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && str == s {
			return method, nil
		}
	}
	if s == "contraentrega" {
		return CashOnDelivery, nil
	}
	if s == "prepago" {
		return Prepaid, nil
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks that the method is one of the defined payment methods.
func (m PaymentMethod) Validate() error {
	if m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidError("payment method")
	}
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

// String returns the canonical name of the method.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}
