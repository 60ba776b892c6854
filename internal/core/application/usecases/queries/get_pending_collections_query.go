package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingCollectionsQueryIsNotConstructed = errors.New(
	"GetPendingCollectionsQuery must be created via NewGetPendingCollectionsQuery constructor",
)

// GetPendingCollectionsQuery lists COD collections awaiting wallet action,
// meaning payments in received or confirmed status.
type GetPendingCollectionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCollectionsQuery creates a pending collections query.
func NewGetPendingCollectionsQuery() GetPendingCollectionsQuery {
	return GetPendingCollectionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCollectionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCollectionsQueryIsNotConstructed)
}

// GetPendingCollectionsQueryResponse is one collection in the wallet queue.
type GetPendingCollectionsQueryResponse struct {
	OrderID        kernel.UUID
	OrderNumber    string
	Status         string
	Method         string
	ExpectedAmount int64
	AmountReceived int64
	HasDiscrepancy bool
}
