package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when creating an order without items.
	ErrItemsAreRequired = errors.New("order must have at least one item")
)

// Order is the aggregate root of the fulfillment engine. It owns the packing
// checklist and the current channel binding, and it is the unit of atomic
// read-modify-write: every operation loads the order, mutates it in memory
// and persists it under an optimistic version check, so concurrent operations
// on the same order resolve to exactly one winner.
//
// Invariants:
//   - status transitions follow the Status state machine
//   - at most one of carrierID/messengerID is set at any time
//   - a messenger is bound only when the delivery method is LocalMessenger,
//     a carrier only for CarrierShipment
//   - status ReadyForDelivery implies every checklist line is verified
type Order struct {
	id             kernel.UUID
	number         string
	status         Status
	deliveryMethod DeliveryMethod
	paymentMethod  PaymentMethod
	totalAmount    kernel.Money
	carrierID      *kernel.UUID
	messengerID    *kernel.UUID
	version        int
	items          []*Item
	checklist      []*ChecklistLine

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Created status, as handed over by the
// external ordering pipeline. Line items, prices and customer identity are
// assumed to exist already; the engine takes over from here.
func NewOrder(
	id kernel.UUID,
	number string,
	deliveryMethod DeliveryMethod,
	paymentMethod PaymentMethod,
	totalAmount kernel.Money,
	items []*Item,
) (*Order, error) {
	return RestoreOrder(id, number, StatusCreated, deliveryMethod, paymentMethod,
		totalAmount, nil, nil, 1, items, nil)
}

// RestoreOrder reconstructs an order from persistence, re-validating every
// invariant so corrupt rows cannot produce a usable aggregate.
func RestoreOrder(
	id kernel.UUID,
	number string,
	status Status,
	deliveryMethod DeliveryMethod,
	paymentMethod PaymentMethod,
	totalAmount kernel.Money,
	carrierID *kernel.UUID,
	messengerID *kernel.UUID,
	version int,
	items []*Item,
	checklist []*ChecklistLine,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := deliveryMethod.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if paymentMethod == CashOnDelivery && deliveryMethod == WarehousePickup {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			errors.New("cash on delivery requires a carrier or messenger delivery"),
		)
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, line := range checklist {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:             id,
		number:         number,
		status:         status,
		deliveryMethod: deliveryMethod,
		paymentMethod:  paymentMethod,
		totalAmount:    totalAmount,
		carrierID:      carrierID,
		messengerID:    messengerID,
		version:        version,
		items:          items,
		checklist:      checklist,
		guard:          guard.NewConstructorGuard(),
	}

	if err := o.validateAssigneeConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryMethod returns the fulfillment channel of the order.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// IsCOD reports whether the order is paid on delivery and therefore gated by
// the COD reconciler before it can close.
func (o *Order) IsCOD() bool {
	return o.paymentMethod == CashOnDelivery
}

// TotalAmount returns the order total, which is also the expected COD amount.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CarrierID returns the bound carrier, or nil.
func (o *Order) CarrierID() *kernel.UUID {
	return o.carrierID
}

// MessengerID returns the bound messenger, or nil.
func (o *Order) MessengerID() *kernel.UUID {
	return o.messengerID
}

// Version returns the optimistic concurrency version of the order row.
func (o *Order) Version() int {
	return o.version
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Checklist returns the packing checklist lines, empty until BuildChecklist.
func (o *Order) Checklist() []*ChecklistLine {
	return o.checklist
}

// BeginPaymentReview moves a transfer-prepaid order into the wallet review
// side branch.
func (o *Order) BeginPaymentReview() error {
	newStatus, err := o.status.BeginPaymentReview()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// BeginPacking moves the order into the warehouse packing flow and builds
// the checklist.
func (o *Order) BeginPacking() error {
	newStatus, err := o.status.BeginPacking()
	if err != nil {
		return err
	}
	o.status = newStatus
	return o.BuildChecklist()
}

// BuildChecklist creates one checklist line per item. It is idempotent:
// calling it for an order that already has lines is a no-op, tolerating
// retried requests.
func (o *Order) BuildChecklist() error {
	if len(o.checklist) > 0 {
		return nil
	}
	if o.status != StatusReadyToPack {
		return errs.NewPreconditionNotMetError("order is not in packing")
	}

	lines := make([]*ChecklistLine, 0, len(o.items))
	for _, item := range o.items {
		line, err := NewChecklistLine(item.ID(), item.RequiredQuantity())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	o.checklist = lines
	return nil
}

// ScanResult reports the outcome of an accepted scan.
type ScanResult struct {
	// Event is the audit record to append to the scan log.
	Event ScanEvent
	// LineCompleted is true when this scan verified its checklist line.
	LineCompleted bool
	// AllVerified is true when every line is now verified; the order has
	// auto-advanced to ReadyForDelivery.
	AllVerified bool
}

// RecordScan resolves a scanned code to a checklist line and credits one
// physical unit. Codes that match no line fail with UnknownBarcode; scans
// beyond the required count fail with AlreadyVerified and change nothing.
// When the last line verifies, the order advances to ReadyForDelivery on its
// own; packers never manually close a checklist.
func (o *Order) RecordScan(code string, scannedBy kernel.UUID, scannedAt time.Time) (ScanResult, error) {
	if o.status != StatusReadyToPack {
		return ScanResult{}, errs.NewPreconditionNotMetError("order is not in packing")
	}
	if err := o.BuildChecklist(); err != nil {
		return ScanResult{}, err
	}

	item := o.findItem(code)
	if item == nil {
		return ScanResult{}, errs.NewUnknownBarcodeError(code)
	}
	line := o.findChecklistLine(item.ID())
	if line == nil {
		return ScanResult{}, errs.NewUnknownBarcodeError(code)
	}

	scanNumber, err := line.recordScan()
	if err != nil {
		return ScanResult{}, errs.NewAlreadyVerifiedError(code, line.RequiredQuantity())
	}

	event, err := NewScanEvent(o.id, item.ID(), code, scanNumber, scannedBy, scannedAt)
	if err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{
		Event:         event,
		LineCompleted: line.IsVerified(),
	}

	if o.allLinesVerified() {
		newStatus, statusErr := o.status.MarkReadyForDelivery()
		if statusErr != nil {
			return ScanResult{}, statusErr
		}
		o.status = newStatus
		result.AllVerified = true
	}

	return result, nil
}

// AssignCarrier binds an external carrier and dispatches the order. The
// order must be ready for delivery, routed to a carrier, and unbound.
func (o *Order) AssignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if o.status != StatusReadyForDelivery {
		return errs.NewOrderNotReadyError(o.status.String())
	}
	if o.deliveryMethod != CarrierShipment {
		return errs.NewMethodMismatchError(o.deliveryMethod.String())
	}
	if o.carrierID != nil || o.messengerID != nil {
		return errs.ErrAlreadyAssigned
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierID = &carrierID
	o.messengerID = nil
	return nil
}

// AssignMessenger binds a local messenger and dispatches the order. The
// order must be ready for delivery, routed to the messenger pool, and
// unbound.
func (o *Order) AssignMessenger(messengerID kernel.UUID) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}
	if o.status != StatusReadyForDelivery {
		return errs.NewOrderNotReadyError(o.status.String())
	}
	if o.deliveryMethod != LocalMessenger {
		return errs.NewMethodMismatchError(o.deliveryMethod.String())
	}
	if o.carrierID != nil || o.messengerID != nil {
		return errs.ErrAlreadyAssigned
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.messengerID = &messengerID
	o.carrierID = nil
	return nil
}

// ReassignCarrier supersedes the current carrier while the order is out for
// delivery. Status does not revert.
func (o *Order) ReassignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if o.status != StatusOutForDelivery {
		return errs.NewPreconditionNotMetError("order is not out for delivery")
	}
	if o.deliveryMethod != CarrierShipment {
		return errs.NewMethodMismatchError(o.deliveryMethod.String())
	}

	o.carrierID = &carrierID
	o.messengerID = nil
	return nil
}

// ReassignMessenger supersedes the current messenger while the order is out
// for delivery. Status does not revert.
func (o *Order) ReassignMessenger(messengerID kernel.UUID) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}
	if o.status != StatusOutForDelivery {
		return errs.NewPreconditionNotMetError("order is not out for delivery")
	}
	if o.deliveryMethod != LocalMessenger {
		return errs.NewMethodMismatchError(o.deliveryMethod.String())
	}

	o.messengerID = &messengerID
	o.carrierID = nil
	return nil
}

// DeliverToCarrier closes a carrier shipment: the carrier took custody.
func (o *Order) DeliverToCarrier() error {
	if o.carrierID == nil {
		return errs.NewPreconditionNotMetError("no carrier assignment bound")
	}

	newStatus, err := o.status.DeliverToCarrier()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// DeliverToCustomer closes the order at the customer. Warehouse pickup
// orders skip the delivery assigner and move straight from ReadyForDelivery;
// messenger orders require a bound messenger. The COD reconciliation gate is
// enforced by the state machine handler, which owns the payment aggregate.
func (o *Order) DeliverToCustomer() error {
	if o.deliveryMethod == WarehousePickup {
		newStatus, err := o.status.PickUp()
		if err != nil {
			return err
		}
		o.status = newStatus
		return nil
	}

	if o.messengerID == nil {
		return errs.NewPreconditionNotMetError("no messenger assignment bound")
	}

	newStatus, err := o.status.DeliverToCustomer()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to the terminal Cancelled status and releases any
// channel binding. Scan history is audit data and stays untouched.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierID = nil
	o.messengerID = nil
	return nil
}

// findItem resolves a scanned code to an item, by barcode or, for items
// without one, by internal product code.
func (o *Order) findItem(code string) *Item {
	for _, item := range o.items {
		if item.Matches(code) {
			return item
		}
	}
	return nil
}

func (o *Order) findChecklistLine(itemID kernel.UUID) *ChecklistLine {
	for _, line := range o.checklist {
		if line.ItemID().IsEqual(itemID) {
			return line
		}
	}
	return nil
}

func (o *Order) allLinesVerified() bool {
	if len(o.checklist) == 0 {
		return false
	}
	for _, line := range o.checklist {
		if !line.IsVerified() {
			return false
		}
	}
	return true
}

func (o *Order) validateAssigneeConsistency() error {
	if o.carrierID != nil && o.messengerID != nil {
		return errs.NewValueIsInvalidError("order cannot have both a carrier and a messenger")
	}
	if o.messengerID != nil && o.deliveryMethod != LocalMessenger {
		return errs.NewValueIsInvalidError("messenger bound to a non-messenger order")
	}
	if o.carrierID != nil && o.deliveryMethod != CarrierShipment {
		return errs.NewValueIsInvalidError("carrier bound to a non-carrier order")
	}
	return nil
}
