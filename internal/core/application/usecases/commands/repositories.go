// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// MessengerRepoFactory provides access to the messenger repository within a transaction.
	MessengerRepoFactory interface {
		MessengerRepository() ports.MessengerRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for operations touching only the order
	// aggregate and its outbox notifications: registration, checklist
	// building, scans and plain status transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignUoW manages transactions for delivery assignment operations,
	// which coordinate the order, the assignment history, the assignee
	// registries and the COD payment row.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		PaymentRepoFactory
		CarrierRepoFactory
		MessengerRepoFactory
		OutboxRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// TransitionUoW manages transactions for explicit status transitions,
	// which may void the COD payment and supersede the active assignment
	// on cancellation, and must read the payment for the delivery gate.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		PaymentRepoFactory
		OutboxRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// CollectionUoW manages transactions for contraentrega reconciliation,
	// which coordinates the payment row, the cash ledger and the order's
	// current assignment.
	CollectionUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		PaymentRepoFactory
		LedgerRepoFactory
		OutboxRepoFactory
	}

	// CollectionUoWFactory creates new collection unit of work instances.
	CollectionUoWFactory interface {
		Create() CollectionUoW
	}
)
