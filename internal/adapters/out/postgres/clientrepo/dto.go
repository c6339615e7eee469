package clientrepo

import (
	"time"

	"shipping/internal/core/domain/model/client"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO maps the client account aggregate to the "clients" table.
// Tokens are stored as opaque strings; the adapter never interprets them.
type ClientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null"`
	APIToken string    `gorm:"column:api_token;type:varchar(255);uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the database table name.
func (ClientDTO) TableName() string {
	return "clients"
}

func (dto ClientDTO) toDomain() (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.NewClient(id, dto.Name, dto.Email)
}
