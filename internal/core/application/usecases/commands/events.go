package commands

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
)

// OrderStateChangedTopic is the broker topic carrying order status
// transitions for downstream consumers (customer notifications, BI).
const OrderStateChangedTopic = "fulfillment.order-state-changed"

// OrderStateChangedEvent is the payload published on every committed status
// transition.
type OrderStateChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// newStateChangedMessage builds the outbox message for an order's current
// status, written in the same transaction as the transition itself.
func newStateChangedMessage(aggregate *order.Order, occurredAt time.Time) (*outbox.Message, error) {
	payload, err := json.Marshal(OrderStateChangedEvent{
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.Number(),
		Status:      aggregate.Status().String(),
		OccurredAt:  occurredAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	return outbox.NewMessage(
		kernel.NewUUID(),
		OrderStateChangedTopic,
		aggregate.ID().String(),
		payload,
		occurredAt,
	)
}
