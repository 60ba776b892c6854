// Package outbox defines the transactional outbox message written in the
// same transaction as the state change it announces. A background job
// drains unpublished messages to the broker, so notifications are never
// lost even when the broker is down at commit time.
package outbox

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMessageIsNotConstructed is returned when using an improperly
// initialized Message.
var ErrMessageIsNotConstructed = errors.New(
	"Message must be created via NewMessage or RestoreMessage",
)

// Message is one pending or published notification.
type Message struct {
	id          kernel.UUID
	topic       string
	key         string
	payload     []byte
	createdAt   time.Time
	publishedAt *time.Time

	guard guard.ConstructorGuard
}

// NewMessage creates an unpublished outbox message.
func NewMessage(id kernel.UUID, topic, key string, payload []byte, createdAt time.Time) (*Message, error) {
	return RestoreMessage(id, topic, key, payload, createdAt, nil)
}

// RestoreMessage reconstructs a message from persistence.
func RestoreMessage(
	id kernel.UUID,
	topic, key string,
	payload []byte,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	return &Message{
		id:          id,
		topic:       topic,
		key:         key,
		payload:     payload,
		createdAt:   createdAt.UTC(),
		publishedAt: publishedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// Topic returns the broker topic the message targets.
func (m *Message) Topic() string {
	return m.topic
}

// Key returns the partition key, usually the order ID.
func (m *Message) Key() string {
	return m.key
}

// Payload returns the serialized event body.
func (m *Message) Payload() []byte {
	return m.payload
}

// CreatedAt returns the UTC timestamp the message was enqueued.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// PublishedAt returns the publish timestamp, or nil while pending.
func (m *Message) PublishedAt() *time.Time {
	return m.publishedAt
}

// IsPublished reports whether the message already reached the broker.
func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// MarkPublished records the publish timestamp. Marking twice is a no-op.
func (m *Message) MarkPublished(at time.Time) {
	if m.publishedAt != nil {
		return
	}
	utc := at.UTC()
	m.publishedAt = &utc
}
