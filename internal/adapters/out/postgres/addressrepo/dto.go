// Package addressrepo provides data transfer objects and mapping functions for
// address persistence. Addresses carry resolved reference identifiers for city
// and country plus geocoded coordinates.
package addressrepo

import (
	"time"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting address aggregates.
type AddressDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID `gorm:"type:uuid;index"`
	TransportationID uuid.UUID `gorm:"type:uuid;index"`
	Type             string    `gorm:"size:16"`
	Alias            string    `gorm:"size:255"`
	Contact          string
	Phone            string `gorm:"size:32"`
	CityID           int
	CountryID        int
	AddressLine1     string
	AddressLine2     string
	AddressLine3     string
	Comment          string
	Latitude         float64
	Longitude        float64
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `gorm:"index"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address domain aggregate to its database representation.
func fromDomain(aggregate *address.Address) AddressDTO {
	return AddressDTO{
		ID:               aggregate.ID().Bytes(),
		ClientID:         aggregate.ClientID().Bytes(),
		TransportationID: aggregate.TransportationID().Bytes(),
		Type:             aggregate.Type().String(),
		Alias:            aggregate.Alias(),
		Contact:          aggregate.Contact(),
		Phone:            aggregate.Phone().String(),
		CityID:           aggregate.CityID(),
		CountryID:        aggregate.CountryID(),
		AddressLine1:     aggregate.AddressLine1(),
		AddressLine2:     aggregate.AddressLine2(),
		AddressLine3:     aggregate.AddressLine3(),
		Comment:          aggregate.Comment(),
		Latitude:         aggregate.Coordinates().Latitude(),
		Longitude:        aggregate.Coordinates().Longitude(),
		DeletedAt:        aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to an address domain aggregate.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	transportationID, err := kernel.UUIDFromBytes(dto.TransportationID[:])
	if err != nil {
		return nil, err
	}

	addressType, err := address.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(
		id,
		clientID,
		transportationID,
		addressType,
		dto.Alias,
		dto.Contact,
		phone,
		dto.CityID,
		dto.CountryID,
		dto.AddressLine1,
		dto.AddressLine2,
		dto.AddressLine3,
		dto.Comment,
		coordinates,
		dto.DeletedAt,
	)
}
