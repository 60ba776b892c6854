package messengerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/messenger"
	"fulfillment/internal/pkg/errs"
)

// GormMessengerRepository implements MessengerRepository using GORM.
type GormMessengerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMessengerRepository creates a new GORM messenger repository.
func NewGormMessengerRepository(db *gorm.DB, tracker aggregateTracker) *GormMessengerRepository {
	return &GormMessengerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new messenger.
func (r *GormMessengerRepository) Add(ctx context.Context, aggregate *messenger.Messenger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing messenger.
func (r *GormMessengerRepository) Update(ctx context.Context, aggregate *messenger.Messenger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MessengerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "zone": dto.Zone, "active": dto.Active})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("messenger", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a messenger by ID.
func (r *GormMessengerRepository) Get(ctx context.Context, id kernel.UUID) (*messenger.Messenger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessengerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("messenger", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the assignable pool, zone matches first.
func (r *GormMessengerRepository) GetAllActive(ctx context.Context, zone string) ([]*messenger.Messenger, error) {
	var dtos []MessengerDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Clauses(clause.OrderBy{
			Expression: gorm.Expr("(zone = ? AND zone <> '') DESC, name", zone),
		}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messengers := make([]*messenger.Messenger, 0, len(dtos))
	for _, dto := range dtos {
		m, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		messengers = append(messengers, m)
	}

	return messengers, nil
}
