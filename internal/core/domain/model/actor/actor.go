// Package actor defines the identity and capability model for the actors
// touching an order: packers, dispatchers, messengers, wallet staff and
// admins. Authorization decisions are centralized here: command handlers
// ask Actor.Can(op) instead of re-implementing role checks ad hoc.
package actor

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Operation enumerates the mutating operations an actor may attempt.
type Operation int

const (
	// OperationUnknown represents an invalid operation value.
	OperationUnknown Operation = iota

	// OperationRegisterOrder ingests an order from the ordering pipeline.
	OperationRegisterOrder

	// OperationBuildChecklist creates the packing checklist for an order.
	OperationBuildChecklist

	// OperationRecordScan records a barcode scan against the checklist.
	OperationRecordScan

	// OperationAssignDelivery binds a carrier or messenger to an order.
	OperationAssignDelivery

	// OperationReassignDelivery supersedes an active assignment.
	OperationReassignDelivery

	// OperationRecordCollection records payment collected on delivery.
	OperationRecordCollection

	// OperationConfirmCollection confirms a collection (wallet role).
	OperationConfirmCollection

	// OperationCloseCollection closes out a confirmed collection.
	OperationCloseCollection

	// OperationRequestTransition requests a terminal or review transition.
	OperationRequestTransition

	// OperationCancelOrder cancels an order in any non-terminal state.
	OperationCancelOrder
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OperationUnknown:           "unknown",
		OperationRegisterOrder:     "register order",
		OperationBuildChecklist:    "build checklist",
		OperationRecordScan:        "record scan",
		OperationAssignDelivery:    "assign delivery",
		OperationReassignDelivery:  "reassign delivery",
		OperationRecordCollection:  "record collection",
		OperationConfirmCollection: "confirm collection",
		OperationCloseCollection:   "close collection",
		OperationRequestTransition: "request transition",
		OperationCancelOrder:       "cancel order",
	}
}

// String returns the operation name used in authorization errors.
func (o Operation) String() string {
	if s, ok := getOperationStrings()[o]; ok {
		return s
	}
	return "unknown"
}

// capabilities maps each role to the operations it may perform. Admin is
// handled separately and may perform everything.
func capabilities() map[Role]map[Operation]bool {
	return map[Role]map[Operation]bool{
		RolePacker: {
			OperationBuildChecklist: true,
			OperationRecordScan:     true,
		},
		RoleDispatcher: {
			OperationRegisterOrder:     true,
			OperationBuildChecklist:    true,
			OperationAssignDelivery:    true,
			OperationReassignDelivery:  true,
			OperationRequestTransition: true,
			OperationCancelOrder:       true,
		},
		RoleMessenger: {
			OperationRecordCollection:  true,
			OperationRequestTransition: true,
		},
		RoleWallet: {
			OperationConfirmCollection: true,
			OperationCloseCollection:   true,
		},
	}
}

// Actor represents an authenticated system user acting on an order. Identity
// issuance and credential validation happen outside the engine; the engine
// trusts the role claim and enforces capabilities.
type Actor struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor from an identity and a role claim.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role claim.
func (a Actor) Role() Role {
	return a.role
}

// Can checks whether the actor's role grants the operation. Returns an
// OperationNotAllowedError when it does not, so handlers can propagate it
// directly.
func (a Actor) Can(op Operation) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if a.role == RoleAdmin {
		return nil
	}

	if allowed := capabilities()[a.role]; allowed[op] {
		return nil
	}

	return errs.NewOperationNotAllowedError(a.role.String(), op.String())
}
