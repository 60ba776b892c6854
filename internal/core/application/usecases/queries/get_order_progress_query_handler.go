package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GetOrderProgressQueryHandler reads packing progress straight from the
// order, item and checklist tables.
type GetOrderProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderProgressQueryHandler creates a handler for progress queries.
func NewGetOrderProgressQueryHandler(db *gorm.DB) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{db: db}
}

// Handle executes the progress query. Orders without a materialized
// checklist report zero verified units per line.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	var response GetOrderProgressQueryResponse

	var header struct {
		ID     uuid.UUID
		Number string
		Status string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&header).Error
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	if header.Number == "" {
		return GetOrderProgressQueryResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	orderID, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	response.OrderID = orderID
	response.Number = header.Number
	response.Status = header.Status

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_code,
			i.barcode,
			i.required_quantity,
			COALESCE(c.verified_count, 0)
		FROM order_items i
		LEFT JOIN checklist_lines c ON c.item_id = i.id
		WHERE i.order_id = ?
		ORDER BY i.product_code
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderProgressLine
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&line.ProductCode,
			&line.Barcode,
			&line.RequiredQuantity,
			&line.VerifiedCount,
		); err != nil {
			return GetOrderProgressQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetOrderProgressQueryResponse{}, idErr
		}
		line.ItemID = itemID
		line.IsVerified = line.VerifiedCount >= line.RequiredQuantity

		response.RequiredTotal += line.RequiredQuantity
		response.VerifiedTotal += line.VerifiedCount
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	return response, nil
}
