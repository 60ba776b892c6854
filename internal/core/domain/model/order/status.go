package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements the
// fulfillment state machine; every transition method validates the source
// state and returns the successor, so an Order can never hold an illegal
// status.
//
// State transitions:
//
//	Created ──┬──> ReadyToPack ──> ReadyForDelivery ──┬──> OutForDelivery ──┬──> DeliveredToCarrier
//	          │         ^                             │                     └──> DeliveredToCustomer
//	          v         │                             └──> DeliveredToCustomer (warehouse pickup)
//	 PaymentUnderReview ┘
//
// Cancelled is reachable from every non-terminal state. ReadyForDelivery and
// OutForDelivery are never set directly by a caller; they are only produced
// by the packaging verifier and the delivery assigner respectively.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreated is the initial status supplied by the ordering pipeline.
	StatusCreated

	// StatusPaymentUnderReview holds transfer-based prepayments until the
	// wallet role validates the payment evidence.
	StatusPaymentUnderReview

	// StatusReadyToPack means the order entered the warehouse packing flow
	// and owns a checklist awaiting barcode verification.
	StatusReadyToPack

	// StatusReadyForDelivery means every checklist line is verified; the
	// order awaits a carrier or messenger binding (or warehouse pickup).
	StatusReadyForDelivery

	// StatusOutForDelivery means a fulfillment channel is bound and the
	// order left the warehouse.
	StatusOutForDelivery

	// StatusDeliveredToCarrier is terminal for carrier shipments.
	StatusDeliveredToCarrier

	// StatusDeliveredToCustomer is terminal for messenger and pickup orders.
	StatusDeliveredToCustomer

	// StatusCancelled is terminal and reachable from any non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "unknown",
		StatusCreated:             "created",
		StatusPaymentUnderReview:  "payment_under_review",
		StatusReadyToPack:         "ready_to_pack",
		StatusReadyForDelivery:    "ready_for_delivery",
		StatusOutForDelivery:      "out_for_delivery",
		StatusDeliveredToCarrier:  "delivered_to_carrier",
		StatusDeliveredToCustomer: "delivered_to_customer",
		StatusCancelled:           "cancelled",
	}
}

// StatusFromString parses a status received at the boundary (for example the
// target of a transition request).
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDeliveredToCarrier || s == StatusDeliveredToCustomer || s == StatusCancelled
}

// BeginPaymentReview transitions Created -> PaymentUnderReview, the side
// branch for transfer-based prepayment evidence.
func (s Status) BeginPaymentReview() (Status, error) {
	if s != StatusCreated {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusPaymentUnderReview.String())
	}
	return StatusPaymentUnderReview, nil
}

// BeginPacking transitions Created or PaymentUnderReview -> ReadyToPack.
func (s Status) BeginPacking() (Status, error) {
	if s != StatusCreated && s != StatusPaymentUnderReview {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusReadyToPack.String())
	}
	return StatusReadyToPack, nil
}

// MarkReadyForDelivery transitions ReadyToPack -> ReadyForDelivery. Only the
// packaging verifier calls this, after the last checklist line verifies.
func (s Status) MarkReadyForDelivery() (Status, error) {
	if s != StatusReadyToPack {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusReadyForDelivery.String())
	}
	return StatusReadyForDelivery, nil
}

// Dispatch transitions ReadyForDelivery -> OutForDelivery. Only the delivery
// assigner calls this, as the result of a successful binding.
func (s Status) Dispatch() (Status, error) {
	if s != StatusReadyForDelivery {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusOutForDelivery.String())
	}
	return StatusOutForDelivery, nil
}

// DeliverToCarrier transitions OutForDelivery -> DeliveredToCarrier.
func (s Status) DeliverToCarrier() (Status, error) {
	if s != StatusOutForDelivery {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusDeliveredToCarrier.String())
	}
	return StatusDeliveredToCarrier, nil
}

// DeliverToCustomer transitions OutForDelivery -> DeliveredToCustomer.
func (s Status) DeliverToCustomer() (Status, error) {
	if s != StatusOutForDelivery {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusDeliveredToCustomer.String())
	}
	return StatusDeliveredToCustomer, nil
}

// PickUp transitions ReadyForDelivery -> DeliveredToCustomer for warehouse
// pickup orders, which skip the delivery assigner entirely.
func (s Status) PickUp() (Status, error) {
	if s != StatusReadyForDelivery {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusDeliveredToCustomer.String())
	}
	return StatusDeliveredToCustomer, nil
}

// Cancel transitions any non-terminal state -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
