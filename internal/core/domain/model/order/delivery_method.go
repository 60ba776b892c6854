package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryMethod is the fulfillment channel of an order. It is a closed enum
// validated at the boundary; the loosely-matched delivery-method strings of
// the legacy system ("domicilio_local" vs "mensajero") are normalized once at
// parse time and cannot drift afterwards.
type DeliveryMethod int

const (
	// DeliveryMethodUnknown represents an invalid or undefined method.
	DeliveryMethodUnknown DeliveryMethod = iota

	// CarrierShipment routes the order to an external shipping company.
	CarrierShipment

	// LocalMessenger routes the order to the in-house messenger pool.
	LocalMessenger

	// WarehousePickup means the customer collects at the warehouse; no
	// carrier or messenger is ever bound.
	WarehousePickup
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		DeliveryMethodUnknown: "unknown",
		CarrierShipment:       "carrier_shipment",
		LocalMessenger:        "local_messenger",
		WarehousePickup:       "warehouse_pickup",
	}
}

// deliveryMethodAliases maps the legacy wire values still emitted by the
// ordering pipeline onto the closed enum. "domicilio_local" routes to the
// local messenger pool.
func deliveryMethodAliases() map[string]DeliveryMethod {
	return map[string]DeliveryMethod{
		"transportadora":   CarrierShipment,
		"domicilio_local":  LocalMessenger,
		"mensajero":        LocalMessenger,
		"mensajeria_local": LocalMessenger,
		"recoge_bodega":    WarehousePickup,
	}
}

// DeliveryMethodFromString parses a delivery method, accepting both the
// canonical names and the legacy aliases.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	for method, str := range getDeliveryMethodStrings() {
		if method != DeliveryMethodUnknown && str == s {
			return method, nil
		}
	}
	if method, ok := deliveryMethodAliases()[s]; ok {
		return method, nil
	}
	return DeliveryMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery method",
		fmt.Errorf("%q is not a valid delivery method", s),
	)
}

// Validate checks that the method is one of the defined channels.
func (m DeliveryMethod) Validate() error {
	if m == DeliveryMethodUnknown {
		return errs.NewValueIsInvalidError("delivery method")
	}
	if _, ok := getDeliveryMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("delivery method")
	}
	return nil
}

// String returns the canonical name of the method.
func (m DeliveryMethod) String() string {
	if s, ok := getDeliveryMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}
