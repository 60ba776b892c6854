package cod

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when using an improperly
	// initialized Payment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// PaymentStatus is the reconciliation state of a contraentrega payment.
//
//	Pending ──> Received ──> Confirmed ──> Completed
//	   │            │            │
//	   └────────────┴────────────┴──> Void (order cancelled)
//
// Only Completed satisfies the state machine's gate for the terminal
// delivered-to-customer transition.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid status value.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means the order is out with a messenger and nothing
	// has been collected yet.
	PaymentPending

	// PaymentReceived means the messenger recorded the collection.
	PaymentReceived

	// PaymentConfirmed means the wallet role accepted the collection.
	PaymentConfirmed

	// PaymentCompleted means cash was handed to the office (or the transfer
	// was settled); the order may now close.
	PaymentCompleted

	// PaymentVoid means the order was cancelled before completion.
	PaymentVoid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentPending:       "pending",
		PaymentReceived:      "received",
		PaymentConfirmed:     "confirmed",
		PaymentCompleted:     "completed",
		PaymentVoid:          "void",
	}
}

// Validate checks that the status is one of the defined reconciliation
// states.
func (s PaymentStatus) Validate() error {
	if s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidError("payment status")
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the wire name of the status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CollectionMethod is how the payment was actually collected on delivery.
type CollectionMethod int

const (
	// CollectionMethodUnknown represents an unset method (nothing collected
	// yet).
	CollectionMethodUnknown CollectionMethod = iota

	// CollectionCash means physical cash in the messenger's possession.
	CollectionCash

	// CollectionTransfer means an electronic transfer; no cash to reconcile.
	CollectionTransfer
)

func getCollectionMethodStrings() map[CollectionMethod]string {
	return map[CollectionMethod]string{
		CollectionMethodUnknown: "unknown",
		CollectionCash:          "cash",
		CollectionTransfer:      "transfer",
	}
}

// CollectionMethodFromString parses a collection method, accepting the
// legacy Spanish wire values.
func CollectionMethodFromString(s string) (CollectionMethod, error) {
	switch s {
	case "cash", "efectivo":
		return CollectionCash, nil
	case "transfer", "transferencia":
		return CollectionTransfer, nil
	}
	return CollectionMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"collection method",
		fmt.Errorf("%q is not a valid collection method", s),
	)
}

// Validate checks that the method is cash or transfer.
func (m CollectionMethod) Validate() error {
	if m != CollectionCash && m != CollectionTransfer {
		return errs.NewValueIsInvalidError("collection method")
	}
	return nil
}

// String returns the wire name of the method.
func (m CollectionMethod) String() string {
	if s, ok := getCollectionMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Payment is the contraentrega reconciliation record of one COD order. It is
// created in Pending when the order is assigned to a messenger, and must
// reach Completed before the order can close.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	expectedAmount kernel.Money
	method         CollectionMethod
	amountReceived kernel.Money
	receivedBy     *kernel.UUID
	confirmedBy    *kernel.UUID
	status         PaymentStatus

	guard guard.ConstructorGuard
}

// NewPayment creates a pending payment for a COD order assigned to a
// messenger. The expected amount is the order total.
func NewPayment(id, orderID kernel.UUID, expectedAmount kernel.Money) (*Payment, error) {
	return RestorePayment(id, orderID, expectedAmount, CollectionMethodUnknown,
		kernel.Money{}, nil, nil, PaymentPending)
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	expectedAmount kernel.Money,
	method CollectionMethod,
	amountReceived kernel.Money,
	receivedBy, confirmedBy *kernel.UUID,
	status PaymentStatus,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:             id,
		orderID:        orderID,
		expectedAmount: expectedAmount,
		method:         method,
		amountReceived: amountReceived,
		receivedBy:     receivedBy,
		confirmedBy:    confirmedBy,
		status:         status,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the COD order this payment reconciles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// ExpectedAmount returns the amount the messenger should collect.
func (p *Payment) ExpectedAmount() kernel.Money {
	return p.expectedAmount
}

// Method returns how the payment was collected, unknown until received.
func (p *Payment) Method() CollectionMethod {
	return p.method
}

// AmountReceived returns the amount actually collected.
func (p *Payment) AmountReceived() kernel.Money {
	return p.amountReceived
}

// ReceivedBy returns the messenger that collected, or nil.
func (p *Payment) ReceivedBy() *kernel.UUID {
	return p.receivedBy
}

// ConfirmedBy returns the wallet user that confirmed, or nil.
func (p *Payment) ConfirmedBy() *kernel.UUID {
	return p.confirmedBy
}

// Status returns the reconciliation status.
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// HasDiscrepancy reports whether the collected amount differs from the
// expected amount. A discrepancy never blocks the flow; it is surfaced for
// the wallet role to adjudicate before confirming.
func (p *Payment) HasDiscrepancy() bool {
	return p.status != PaymentPending && !p.amountReceived.IsEqual(p.expectedAmount)
}

// IsCash reports whether physical cash is in play, which requires ledger
// entries on collection and close-out.
func (p *Payment) IsCash() bool {
	return p.method == CollectionCash
}

// IsCompleted reports whether the payment satisfies the delivery gate.
func (p *Payment) IsCompleted() bool {
	return p.status == PaymentCompleted
}

// RecordCollection records what the messenger collected at the door. The
// messenger must match the order's current assignment (checked by the
// handler against the order row); the payment itself only enforces its own
// status machine.
func (p *Payment) RecordCollection(method CollectionMethod, amount kernel.Money, messengerID kernel.UUID) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if err := messengerID.Validate(); err != nil {
		return err
	}
	if p.status != PaymentPending {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("payment is %s, expected pending", p.status),
		)
	}

	p.method = method
	p.amountReceived = amount
	p.receivedBy = &messengerID
	p.status = PaymentReceived
	return nil
}

// Confirm records the wallet role's acceptance of the collection.
func (p *Payment) Confirm(walletUserID kernel.UUID) error {
	if err := walletUserID.Validate(); err != nil {
		return err
	}
	if p.status != PaymentReceived {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("payment is %s, expected received", p.status),
		)
	}

	p.confirmedBy = &walletUserID
	p.status = PaymentConfirmed
	return nil
}

// Close completes the reconciliation: cash was handed to the office, or the
// transfer settled. Only after this does the order pass the delivery gate.
func (p *Payment) Close() error {
	if p.status != PaymentConfirmed {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("payment is %s, expected confirmed", p.status),
		)
	}

	p.status = PaymentCompleted
	return nil
}

// Void marks the payment void when the order is cancelled. Completed
// payments cannot be voided.
func (p *Payment) Void() error {
	if p.status == PaymentCompleted {
		return errs.NewPreconditionNotMetError("completed payment cannot be voided")
	}
	p.status = PaymentVoid
	return nil
}

// EnsureReassignable verifies the payment can follow the order to a new
// messenger. Only pending payments move; once a collection is recorded the
// cash stays attributed to the messenger who received it.
func (p *Payment) EnsureReassignable() error {
	if p.status != PaymentPending {
		return errs.NewPreconditionNotMetError(
			fmt.Sprintf("payment is %s, expected pending", p.status),
		)
	}
	return nil
}
