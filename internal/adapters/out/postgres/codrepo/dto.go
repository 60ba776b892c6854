// Package codrepo persists the contraentrega payment aggregates and the
// append-only messenger cash ledger.
package codrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
)

// PaymentDTO represents the reconciliation row of one COD order.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ExpectedAmount int64     `gorm:"column:expected_amount"`
	Method         string
	AmountReceived int64      `gorm:"column:amount_received"`
	ReceivedBy     *uuid.UUID `gorm:"type:uuid"`
	ConfirmedBy    *uuid.UUID `gorm:"type:uuid"`
	Status         string     `gorm:"index"`
}

// TableName specifies the database table name for COD payments.
func (PaymentDTO) TableName() string {
	return "cod_payments"
}

// LedgerEntryDTO represents one immutable cash ledger movement.
type LedgerEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessengerID uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Kind        string
	Amount      int64
	RecordedAt  time.Time `gorm:"column:recorded_at"`
}

// TableName specifies the database table name for ledger entries.
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func paymentStatusFromString(s string) cod.PaymentStatus {
	switch s {
	case cod.PaymentPending.String():
		return cod.PaymentPending
	case cod.PaymentReceived.String():
		return cod.PaymentReceived
	case cod.PaymentConfirmed.String():
		return cod.PaymentConfirmed
	case cod.PaymentCompleted.String():
		return cod.PaymentCompleted
	case cod.PaymentVoid.String():
		return cod.PaymentVoid
	}
	return cod.PaymentStatusUnknown
}

func paymentFromDomain(aggregate *cod.Payment) PaymentDTO {
	var receivedBy, confirmedBy *uuid.UUID
	if id := aggregate.ReceivedBy(); id != nil {
		raw := id.Bytes()
		receivedBy = &raw
	}
	if id := aggregate.ConfirmedBy(); id != nil {
		raw := id.Bytes()
		confirmedBy = &raw
	}

	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		ExpectedAmount: aggregate.ExpectedAmount().Amount(),
		Method:         aggregate.Method().String(),
		AmountReceived: aggregate.AmountReceived().Amount(),
		ReceivedBy:     receivedBy,
		ConfirmedBy:    confirmedBy,
		Status:         aggregate.Status().String(),
	}
}

func paymentToDomain(dto PaymentDTO) (*cod.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	expectedAmount, err := kernel.NewMoney(dto.ExpectedAmount)
	if err != nil {
		return nil, err
	}
	amountReceived, err := kernel.NewMoney(dto.AmountReceived)
	if err != nil {
		return nil, err
	}

	var method cod.CollectionMethod
	if dto.Method != cod.CollectionMethodUnknown.String() {
		method, err = cod.CollectionMethodFromString(dto.Method)
		if err != nil {
			return nil, err
		}
	}

	var receivedBy, confirmedBy *kernel.UUID
	if dto.ReceivedBy != nil {
		rID, idErr := kernel.UUIDFromBytes((*dto.ReceivedBy)[:])
		if idErr != nil {
			return nil, idErr
		}
		receivedBy = &rID
	}
	if dto.ConfirmedBy != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.ConfirmedBy)[:])
		if idErr != nil {
			return nil, idErr
		}
		confirmedBy = &cID
	}

	return cod.RestorePayment(id, orderID, expectedAmount, method, amountReceived,
		receivedBy, confirmedBy, paymentStatusFromString(dto.Status))
}

func ledgerEntryFromDomain(entry *cod.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:          entry.ID().Bytes(),
		MessengerID: entry.MessengerID().Bytes(),
		OrderID:     entry.OrderID().Bytes(),
		Kind:        entry.Kind().String(),
		Amount:      entry.Amount().Amount(),
		RecordedAt:  entry.RecordedAt(),
	}
}

func ledgerEntryToDomain(dto LedgerEntryDTO) (*cod.LedgerEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	messengerID, err := kernel.UUIDFromBytes(dto.MessengerID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	var kind cod.EntryKind
	switch dto.Kind {
	case cod.EntryReceived.String():
		kind = cod.EntryReceived
	case cod.EntryDelivered.String():
		kind = cod.EntryDelivered
	}

	return cod.RestoreLedgerEntry(id, messengerID, orderID, kind, amount, dto.RecordedAt)
}
