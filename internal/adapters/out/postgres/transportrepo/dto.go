// Package transportrepo provides data transfer objects and mapping functions for
// transportation persistence. This package implements the repository pattern for
// the transportation domain aggregate, handling the conversion between domain
// entities and database representations.
package transportrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"

	"github.com/google/uuid"
)

// TransportationDTO represents the database structure for persisting
// transportation aggregates. Soft deletion is modelled with a nullable
// deleted_at column so cancelled requests stay queryable for history views.
type TransportationDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID  `gorm:"type:uuid;index"`
	Name              string     `gorm:"size:255"`
	Status            int        `gorm:"index"`
	PickupFrom        time.Time  `gorm:"column:pickup_from"`
	PickupTo          time.Time  `gorm:"column:pickup_to"`
	PickupAddressID   *uuid.UUID `gorm:"type:uuid"`
	DeliveryAddressID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
	DeletedAt         *time.Time `gorm:"index"`
}

// TableName specifies the database table name for transportation entities.
func (TransportationDTO) TableName() string {
	return "transportations"
}

// fromDomain converts a transportation domain aggregate to its database representation.
func fromDomain(aggregate *transportation.Transportation) TransportationDTO {
	return TransportationDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.ClientID().Bytes(),
		Name:              aggregate.Name(),
		Status:            int(aggregate.Status()),
		PickupFrom:        aggregate.Pickup().From(),
		PickupTo:          aggregate.Pickup().To(),
		PickupAddressID:   optionalUUIDBytes(aggregate.PickupAddressID()),
		DeliveryAddressID: optionalUUIDBytes(aggregate.DeliveryAddressID()),
		DeletedAt:         aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a transportation domain aggregate.
func toDomain(dto TransportationDTO) (*transportation.Transportation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewDateTimeInterval(dto.PickupFrom, dto.PickupTo)
	if err != nil {
		return nil, err
	}

	pickupAddressID, err := optionalUUIDFromBytes(dto.PickupAddressID)
	if err != nil {
		return nil, err
	}

	deliveryAddressID, err := optionalUUIDFromBytes(dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	return transportation.RestoreTransportation(
		id,
		clientID,
		dto.Name,
		pickup,
		transportation.Status(dto.Status),
		pickupAddressID,
		deliveryAddressID,
		dto.DeletedAt,
	)
}

func optionalUUIDBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func optionalUUIDFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
