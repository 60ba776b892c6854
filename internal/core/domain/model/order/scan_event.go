package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ScanEvent is the append-only audit record of a single accepted barcode
// scan. Events are never mutated or deleted; cancelling an order keeps its
// scan history intact. The scan number is monotonic per item and assigned
// under the same lock that increments the checklist count, so two concurrent
// scans can never be credited past the required quantity.
type ScanEvent struct {
	orderID    kernel.UUID
	itemID     kernel.UUID
	barcode    string
	scanNumber int
	scannedBy  kernel.UUID
	scannedAt  time.Time
}

// NewScanEvent creates an immutable scan event record.
func NewScanEvent(
	orderID, itemID kernel.UUID,
	barcode string,
	scanNumber int,
	scannedBy kernel.UUID,
	scannedAt time.Time,
) (ScanEvent, error) {
	if err := orderID.Validate(); err != nil {
		return ScanEvent{}, err
	}
	if err := itemID.Validate(); err != nil {
		return ScanEvent{}, err
	}
	if barcode == "" {
		return ScanEvent{}, errs.NewValueIsRequiredError("barcode")
	}
	if scanNumber <= 0 {
		return ScanEvent{}, errs.NewValueIsInvalidError("scanNumber")
	}
	if err := scannedBy.Validate(); err != nil {
		return ScanEvent{}, err
	}

	return ScanEvent{
		orderID:    orderID,
		itemID:     itemID,
		barcode:    barcode,
		scanNumber: scanNumber,
		scannedBy:  scannedBy,
		scannedAt:  scannedAt.UTC(),
	}, nil
}

// OrderID returns the order the scan belongs to.
func (e ScanEvent) OrderID() kernel.UUID {
	return e.orderID
}

// ItemID returns the item whose checklist line was credited.
func (e ScanEvent) ItemID() kernel.UUID {
	return e.itemID
}

// Barcode returns the scanned code as read by the scanner.
func (e ScanEvent) Barcode() string {
	return e.barcode
}

// ScanNumber returns the 1-based, per-item sequence number of the scan.
func (e ScanEvent) ScanNumber() int {
	return e.scanNumber
}

// ScannedBy returns the actor that performed the scan.
func (e ScanEvent) ScannedBy() kernel.UUID {
	return e.scannedBy
}

// ScannedAt returns the UTC timestamp of the scan.
func (e ScanEvent) ScannedAt() time.Time {
	return e.scannedAt
}
