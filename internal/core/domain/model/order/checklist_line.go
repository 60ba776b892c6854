package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrChecklistLineIsNotConstructed is returned when a ChecklistLine was not
// created through its constructors.
var ErrChecklistLineIsNotConstructed = errors.New(
	"ChecklistLine must be created via NewChecklistLine or RestoreChecklistLine",
)

// ChecklistLine tracks packaging verification progress for one order item.
// A line is verified once its scan count reaches the item's required
// quantity; scans beyond that are rejected, never over-counted.
type ChecklistLine struct {
	itemID           kernel.UUID
	requiredQuantity int
	verifiedCount    int

	guard guard.ConstructorGuard
}

// NewChecklistLine creates an unverified line for an order item.
func NewChecklistLine(itemID kernel.UUID, requiredQuantity int) (*ChecklistLine, error) {
	return RestoreChecklistLine(itemID, requiredQuantity, 0)
}

// RestoreChecklistLine reconstructs a line from persistence.
func RestoreChecklistLine(itemID kernel.UUID, requiredQuantity, verifiedCount int) (*ChecklistLine, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	if requiredQuantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"requiredQuantity",
			fmt.Errorf("%d is not greater than 0", requiredQuantity),
		)
	}
	if verifiedCount < 0 || verifiedCount > requiredQuantity {
		return nil, errs.NewValueIsOutOfRangeError("verifiedCount", verifiedCount, 0, requiredQuantity)
	}

	return &ChecklistLine{
		itemID:           itemID,
		requiredQuantity: requiredQuantity,
		verifiedCount:    verifiedCount,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through a constructor.
func (l *ChecklistLine) Validate() error {
	if l == nil {
		return ErrChecklistLineIsNotConstructed
	}
	return l.guard.Validate(ErrChecklistLineIsNotConstructed)
}

// ItemID returns the order item this line verifies.
func (l *ChecklistLine) ItemID() kernel.UUID {
	return l.itemID
}

// RequiredQuantity returns the number of scans required to verify the line.
func (l *ChecklistLine) RequiredQuantity() int {
	return l.requiredQuantity
}

// VerifiedCount returns how many units have been scanned so far.
func (l *ChecklistLine) VerifiedCount() int {
	return l.verifiedCount
}

// IsVerified reports whether the line reached its required quantity.
func (l *ChecklistLine) IsVerified() bool {
	return l.verifiedCount >= l.requiredQuantity
}

// recordScan credits one scan and returns the new count. A scan beyond the
// required quantity is rejected so duplicate scans cannot over-count; the
// caller surfaces it as AlreadyVerified.
func (l *ChecklistLine) recordScan() (int, error) {
	if l.IsVerified() {
		return l.verifiedCount, errs.ErrAlreadyVerified
	}
	l.verifiedCount++
	return l.verifiedCount, nil
}
