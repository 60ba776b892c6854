// Package queries contains read-only operations for the fulfillment engine.
// Query handlers read the database directly, bypassing the aggregates, and
// return flat response structs shaped for the HTTP layer.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderProgressQueryIsNotConstructed = errors.New(
	"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
)

// GetOrderProgressQuery retrieves the packing progress of one order: its
// status, checklist lines and scan counts.
type GetOrderProgressQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a progress query for the given order.
func NewGetOrderProgressQuery(orderID kernel.UUID) (GetOrderProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return GetOrderProgressQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderProgressLine is one checklist line in a progress response.
type OrderProgressLine struct {
	ItemID           kernel.UUID
	ProductCode      string
	Barcode          string
	RequiredQuantity int
	VerifiedCount    int
	IsVerified       bool
}

// GetOrderProgressQueryResponse is the packing progress of one order.
type GetOrderProgressQueryResponse struct {
	OrderID       kernel.UUID
	Number        string
	Status        string
	RequiredTotal int
	VerifiedTotal int
	Lines         []OrderProgressLine
}
