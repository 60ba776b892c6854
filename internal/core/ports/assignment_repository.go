package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the append-only
// delivery assignment history.
type AssignmentRepository interface {
	// Add persists a new assignment record.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists the superseded timestamp of an existing record.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// GetActiveByOrder retrieves the order's current assignment, the one
	// without a superseded timestamp. Returns errs.ObjectNotFoundError
	// when the order has no active assignment.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetHistoryByOrder retrieves all assignment records of an order,
	// oldest first.
	GetHistoryByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
