package cargorepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRepository {
	return &GormCargoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
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

// Update saves an existing cargo to the database. The deleted_at column is
// written explicitly so MarkDeleted is persisted.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CargoDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":           dto.Name,
			"length":         dto.Length,
			"width":          dto.Width,
			"height":         dto.Height,
			"weight":         dto.Weight,
			"price_amount":   dto.PriceAmount,
			"price_currency": dto.PriceCurrency,
			"deleted_at":     dto.DeletedAt,
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

// Get retrieves a cargo by ID. Soft-deleted cargos are treated as absent.
func (r *GormCargoRepository) Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted_at IS NULL", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTransportation retrieves all live cargos of one transportation.
func (r *GormCargoRepository) GetByTransportation(ctx context.Context, transportationID kernel.UUID) ([]*cargo.Cargo, error) {
	if err := transportationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CargoDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "transportation_id = ? AND deleted_at IS NULL", transportationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, c)
	}

	return cargos, nil
}
