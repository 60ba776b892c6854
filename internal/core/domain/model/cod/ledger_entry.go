package cod

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLedgerEntryIsNotConstructed is returned when using an improperly
// initialized LedgerEntry.
var ErrLedgerEntryIsNotConstructed = errors.New(
	"LedgerEntry must be created via NewLedgerEntry or RestoreLedgerEntry",
)

// EntryKind is the direction of a cash ledger movement.
type EntryKind int

const (
	// EntryKindUnknown represents an invalid kind.
	EntryKindUnknown EntryKind = iota

	// EntryReceived means the messenger took cash from a customer.
	EntryReceived

	// EntryDelivered means the messenger handed cash to the office.
	EntryDelivered
)

func getEntryKindStrings() map[EntryKind]string {
	return map[EntryKind]string{
		EntryKindUnknown: "unknown",
		EntryReceived:    "received",
		EntryDelivered:   "delivered",
	}
}

// Validate checks that the kind is received or delivered.
func (k EntryKind) Validate() error {
	if k != EntryReceived && k != EntryDelivered {
		return errs.NewValueIsInvalidError("ledger entry kind")
	}
	return nil
}

// String returns the wire name of the kind.
func (k EntryKind) String() string {
	if s, ok := getEntryKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// LedgerEntry is one immutable movement in a messenger's cash ledger. A
// messenger's balance is never stored; it is always derived as the sum of
// received entries minus delivered entries, so the ledger is the single
// source of truth for cash in hand.
type LedgerEntry struct {
	id          kernel.UUID
	messengerID kernel.UUID
	orderID     kernel.UUID
	kind        EntryKind
	amount      kernel.Money
	recordedAt  time.Time

	guard guard.ConstructorGuard
}

// NewLedgerEntry creates a ledger movement tied to an order's payment.
func NewLedgerEntry(
	id, messengerID, orderID kernel.UUID,
	kind EntryKind,
	amount kernel.Money,
	recordedAt time.Time,
) (*LedgerEntry, error) {
	return RestoreLedgerEntry(id, messengerID, orderID, kind, amount, recordedAt)
}

// RestoreLedgerEntry reconstructs a ledger entry from persistence.
func RestoreLedgerEntry(
	id, messengerID, orderID kernel.UUID,
	kind EntryKind,
	amount kernel.Money,
	recordedAt time.Time,
) (*LedgerEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := messengerID.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &LedgerEntry{
		id:          id,
		messengerID: messengerID,
		orderID:     orderID,
		kind:        kind,
		amount:      amount,
		recordedAt:  recordedAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e *LedgerEntry) Validate() error {
	if e == nil {
		return ErrLedgerEntryIsNotConstructed
	}
	return e.guard.Validate(ErrLedgerEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *LedgerEntry) ID() kernel.UUID {
	return e.id
}

// MessengerID returns the messenger whose ledger this entry belongs to.
func (e *LedgerEntry) MessengerID() kernel.UUID {
	return e.messengerID
}

// OrderID returns the order whose payment produced this movement.
func (e *LedgerEntry) OrderID() kernel.UUID {
	return e.orderID
}

// Kind returns the movement direction.
func (e *LedgerEntry) Kind() EntryKind {
	return e.kind
}

// Amount returns the movement amount.
func (e *LedgerEntry) Amount() kernel.Money {
	return e.amount
}

// RecordedAt returns the UTC timestamp of the movement.
func (e *LedgerEntry) RecordedAt() time.Time {
	return e.recordedAt
}
