// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for external carrier
// records.
type CarrierRepository interface {
	// Add persists a new carrier.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllActive retrieves every carrier eligible for new assignments.
	GetAllActive(ctx context.Context) ([]*carrier.Carrier, error)
}
