package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items, checklist lines and scan events.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's version for optimistic concurrency control. Returns
	// errs.ErrConcurrentConflict when the stored version has moved on.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with items, checklist and assignees.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its business number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by dispatch views to list work queues.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// AddScanEvent appends an accepted scan to the immutable audit log.
	AddScanEvent(ctx context.Context, event order.ScanEvent) error

	// GetScanEvents retrieves the scan log of an order, oldest first.
	GetScanEvents(ctx context.Context, orderID kernel.UUID) ([]order.ScanEvent, error)
}
