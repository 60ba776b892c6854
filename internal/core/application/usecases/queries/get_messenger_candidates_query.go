package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetMessengerCandidatesQueryIsNotConstructed = errors.New(
	"GetMessengerCandidatesQuery must be created via NewGetMessengerCandidatesQuery constructor",
)

// GetMessengerCandidatesQuery lists active messengers for assignment. Zone
// is a soft filter: matching messengers sort first, the rest follow.
type GetMessengerCandidatesQuery struct {
	zone string

	guard guard.ConstructorGuard
}

// NewGetMessengerCandidatesQuery creates a candidates query. Zone may be
// empty to list the whole active pool.
func NewGetMessengerCandidatesQuery(zone string) GetMessengerCandidatesQuery {
	return GetMessengerCandidatesQuery{
		zone:  zone,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMessengerCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessengerCandidatesQueryIsNotConstructed)
}

// Zone returns the requested zone affinity, or "".
func (q GetMessengerCandidatesQuery) Zone() string {
	return q.zone
}

// GetMessengerCandidatesQueryResponse is one assignable messenger.
type GetMessengerCandidatesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Zone      string
	ZoneMatch bool
}
