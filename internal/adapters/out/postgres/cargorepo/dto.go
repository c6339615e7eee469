// Package cargorepo provides data transfer objects and mapping functions for
// cargo persistence. Cargo rows always reference their parent transportation,
// deleting a cargo keeps the row with a deleted_at marker.
package cargorepo

import (
	"time"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The price is stored as minor units plus a currency code.
type CargoDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransportationID uuid.UUID `gorm:"type:uuid;index"`
	ClientID         uuid.UUID `gorm:"type:uuid;index"`
	Name             string    `gorm:"size:255"`
	Length           int
	Width            int
	Height           int
	Weight           int
	PriceAmount      int64
	PriceCurrency    string     `gorm:"size:3"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `gorm:"index"`
}

// TableName specifies the database table name for cargo entities.
func (CargoDTO) TableName() string {
	return "cargos"
}

// fromDomain converts a cargo domain aggregate to its database representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	characteristics := aggregate.Characteristics()

	return CargoDTO{
		ID:               aggregate.ID().Bytes(),
		TransportationID: aggregate.TransportationID().Bytes(),
		ClientID:         aggregate.ClientID().Bytes(),
		Name:             characteristics.Name(),
		Length:           characteristics.Length(),
		Width:            characteristics.Width(),
		Height:           characteristics.Height(),
		Weight:           characteristics.Weight(),
		PriceAmount:      aggregate.Price().Amount(),
		PriceCurrency:    aggregate.Price().Currency().Code(),
		DeletedAt:        aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a cargo domain aggregate.
func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transportationID, err := kernel.UUIDFromBytes(dto.TransportationID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	characteristics, err := cargo.NewCharacteristics(
		dto.Name, dto.Length, dto.Width, dto.Height, dto.Weight)
	if err != nil {
		return nil, err
	}

	price, err := kernel.RestoreMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(id, transportationID, clientID, characteristics, price, dto.DeletedAt)
}
