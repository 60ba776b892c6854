package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/messenger"
)

// MessengerRepository defines the persistence contract for in-house
// messenger records.
type MessengerRepository interface {
	// Add persists a new messenger.
	Add(ctx context.Context, aggregate *messenger.Messenger) error

	// Update persists changes to an existing messenger.
	Update(ctx context.Context, aggregate *messenger.Messenger) error

	// Get retrieves a messenger by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*messenger.Messenger, error)

	// GetAllActive retrieves every messenger eligible for new assignments.
	// Zone is a soft filter: when non-empty, messengers matching the zone
	// sort first but non-matching ones are still returned.
	GetAllActive(ctx context.Context, zone string) ([]*messenger.Messenger, error)
}
