package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
)

// GetPendingCollectionsQueryHandler lists the wallet role's work queue.
type GetPendingCollectionsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCollectionsQueryHandler creates a handler for the wallet queue.
func NewGetPendingCollectionsQueryHandler(db *gorm.DB) GetPendingCollectionsQueryHandler {
	return GetPendingCollectionsQueryHandler{db: db}
}

// Handle executes the pending collections query, oldest orders first.
func (h GetPendingCollectionsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCollectionsQuery,
) ([]GetPendingCollectionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	collections := make([]GetPendingCollectionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.order_id,
			o.number,
			p.status,
			p.method,
			p.expected_amount,
			p.amount_received
		FROM cod_payments p
		JOIN orders o ON o.id = p.order_id
		WHERE p.status IN (?, ?)
		ORDER BY o.number
	`, cod.PaymentReceived.String(), cod.PaymentConfirmed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var collection GetPendingCollectionsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&collection.OrderNumber,
			&collection.Status,
			&collection.Method,
			&collection.ExpectedAmount,
			&collection.AmountReceived,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		collection.OrderID = orderID
		collection.HasDiscrepancy = collection.AmountReceived != collection.ExpectedAmount
		collections = append(collections, collection)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return collections, nil
}
