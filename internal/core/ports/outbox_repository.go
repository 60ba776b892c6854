package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for transactional
// outbox messages.
type OutboxRepository interface {
	// Add enqueues a message inside the caller's transaction.
	Add(ctx context.Context, message *outbox.Message) error

	// Update persists the published timestamp of a drained message.
	Update(ctx context.Context, message *outbox.Message) error

	// GetPending retrieves up to limit unpublished messages, oldest first.
	GetPending(ctx context.Context, limit int) ([]*outbox.Message, error)
}

// MessagePublisher pushes a serialized event to the broker. Implemented by
// the Kafka adapter; the outbox job is its only caller.
type MessagePublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}
