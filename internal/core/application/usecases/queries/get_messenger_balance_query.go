package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetMessengerBalanceQueryIsNotConstructed = errors.New(
	"GetMessengerBalanceQuery must be created via NewGetMessengerBalanceQuery constructor",
)

// GetMessengerBalanceQuery derives a messenger's cash in hand from the
// ledger. The balance is never stored anywhere.
type GetMessengerBalanceQuery struct {
	messengerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMessengerBalanceQuery creates a balance query for the messenger.
func NewGetMessengerBalanceQuery(messengerID kernel.UUID) (GetMessengerBalanceQuery, error) {
	if err := messengerID.Validate(); err != nil {
		return GetMessengerBalanceQuery{}, err
	}

	return GetMessengerBalanceQuery{
		messengerID: messengerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessengerBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetMessengerBalanceQueryIsNotConstructed)
}

// MessengerID returns the messenger being inspected.
func (q GetMessengerBalanceQuery) MessengerID() kernel.UUID {
	return q.messengerID
}

// GetMessengerBalanceQueryResponse is the derived cash position of one
// messenger: total received, total handed over, and the open difference.
type GetMessengerBalanceQueryResponse struct {
	MessengerID    kernel.UUID
	ReceivedTotal  int64
	DeliveredTotal int64
	Balance        int64
}
