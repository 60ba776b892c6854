package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
)

// PaymentRepository defines the persistence contract for contraentrega
// payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate.
	Add(ctx context.Context, aggregate *cod.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *cod.Payment) error

	// GetByOrder retrieves the payment of a COD order.
	// Returns errs.ObjectNotFoundError when the order has no payment row.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*cod.Payment, error)

	// GetAllInStatus retrieves all payments in the given status. Used by
	// the wallet role to list collections awaiting confirmation.
	GetAllInStatus(ctx context.Context, status cod.PaymentStatus) ([]*cod.Payment, error)
}

// LedgerRepository defines the persistence contract for the append-only
// messenger cash ledger. Entries are immutable once written.
type LedgerRepository interface {
	// Add persists a new ledger movement.
	Add(ctx context.Context, entry *cod.LedgerEntry) error

	// GetByMessenger retrieves all movements of a messenger, oldest first.
	GetByMessenger(ctx context.Context, messengerID kernel.UUID) ([]*cod.LedgerEntry, error)

	// GetBalance derives the messenger's cash in hand as the sum of
	// received entries minus delivered entries.
	GetBalance(ctx context.Context, messengerID kernel.UUID) (kernel.Money, error)
}
