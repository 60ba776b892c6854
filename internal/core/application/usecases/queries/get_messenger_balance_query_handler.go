package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/cod"
)

// GetMessengerBalanceQueryHandler sums the messenger's ledger movements.
type GetMessengerBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetMessengerBalanceQueryHandler creates a handler for balance queries.
func NewGetMessengerBalanceQueryHandler(db *gorm.DB) GetMessengerBalanceQueryHandler {
	return GetMessengerBalanceQueryHandler{db: db}
}

// Handle executes the balance query. A messenger with no ledger entries
// reports a zero balance rather than an error.
func (h GetMessengerBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetMessengerBalanceQuery,
) (GetMessengerBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMessengerBalanceQueryResponse{}, err
	}

	var totals struct {
		Received  int64
		Delivered int64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = ?), 0) AS received,
			COALESCE(SUM(amount) FILTER (WHERE kind = ?), 0) AS delivered
		FROM ledger_entries
		WHERE messenger_id = ?
	`, cod.EntryReceived.String(), cod.EntryDelivered.String(),
		query.MessengerID().String()).Scan(&totals).Error
	if err != nil {
		return GetMessengerBalanceQueryResponse{}, err
	}

	return GetMessengerBalanceQueryResponse{
		MessengerID:    query.MessengerID(),
		ReceivedTotal:  totals.Received,
		DeliveredTotal: totals.Delivered,
		Balance:        totals.Received - totals.Delivered,
	}, nil
}
