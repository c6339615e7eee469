package transportrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportationRepository implements TransportationRepository using GORM.
type GormTransportationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportationRepository creates a new GORM transportation repository.
func NewGormTransportationRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportationRepository {
	return &GormTransportationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transportation to the database.
func (r *GormTransportationRepository) Add(ctx context.Context, aggregate *transportation.Transportation) error {
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

// Update saves an existing transportation to the database. Nullable columns
// are written explicitly so clearing an address link or restoring a deleted
// request persists correctly.
func (r *GormTransportationRepository) Update(ctx context.Context, aggregate *transportation.Transportation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransportationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"client_id":           dto.ClientID,
			"name":                dto.Name,
			"status":              dto.Status,
			"pickup_from":         dto.PickupFrom,
			"pickup_to":           dto.PickupTo,
			"pickup_address_id":   dto.PickupAddressID,
			"delivery_address_id": dto.DeliveryAddressID,
			"deleted_at":          dto.DeletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transportation by ID. Soft-deleted requests are treated
// as absent.
func (r *GormTransportationRepository) Get(ctx context.Context, id kernel.UUID) (*transportation.Transportation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted_at IS NULL", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transportation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
