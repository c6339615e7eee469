package addressrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address to the database.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
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

// Update saves an existing address to the database.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"type":          dto.Type,
			"alias":         dto.Alias,
			"contact":       dto.Contact,
			"phone":         dto.Phone,
			"city_id":       dto.CityID,
			"country_id":    dto.CountryID,
			"address_line1": dto.AddressLine1,
			"address_line2": dto.AddressLine2,
			"address_line3": dto.AddressLine3,
			"comment":       dto.Comment,
			"latitude":      dto.Latitude,
			"longitude":     dto.Longitude,
			"deleted_at":    dto.DeletedAt,
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

// Get retrieves an address by ID. Soft-deleted addresses are treated as absent.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted_at IS NULL", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTransportation retrieves all live addresses of one transportation.
func (r *GormAddressRepository) GetByTransportation(ctx context.Context, transportationID kernel.UUID) ([]*address.Address, error) {
	if err := transportationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "transportation_id = ? AND deleted_at IS NULL", transportationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}
