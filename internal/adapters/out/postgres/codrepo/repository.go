package codrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment row.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *cod.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment row.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *cod.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"method":          dto.Method,
			"amount_received": dto.AmountReceived,
			"received_by":     dto.ReceivedBy,
			"confirmed_by":    dto.ConfirmedBy,
			"status":          dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves the payment of a COD order.
func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*cod.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for order", orderID.String())
		}
		return nil, err
	}

	return paymentToDomain(dto)
}

// GetAllInStatus retrieves all payments in the given status.
func (r *GormPaymentRepository) GetAllInStatus(ctx context.Context, status cod.PaymentStatus) ([]*cod.Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	payments := make([]*cod.Payment, 0, len(dtos))
	for _, dto := range dtos {
		payment, toErr := paymentToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// GormLedgerRepository implements LedgerRepository using GORM. Entries are
// append-only; there is no update path.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add appends a ledger movement.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *cod.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := ledgerEntryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByMessenger retrieves all movements of a messenger, oldest first.
func (r *GormLedgerRepository) GetByMessenger(ctx context.Context, messengerID kernel.UUID) ([]*cod.LedgerEntry, error) {
	if err := messengerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerEntryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "messenger_id = ?", messengerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*cod.LedgerEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, toErr := ledgerEntryToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetBalance derives the messenger's cash in hand from the ledger.
func (r *GormLedgerRepository) GetBalance(ctx context.Context, messengerID kernel.UUID) (kernel.Money, error) {
	if err := messengerID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var balance int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE messenger_id = ?
	`, cod.EntryReceived.String(), messengerID.Bytes()).Scan(&balance).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(balance)
}
