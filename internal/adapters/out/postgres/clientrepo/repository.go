package clientrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/client"

	"gorm.io/gorm"
)

// GormClientRepository resolves bearer tokens to client accounts.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByToken looks up the account owning the given API token.
// Returns (nil, nil) when the token is unknown.
func (r *GormClientRepository) FindByToken(ctx context.Context, token string) (*client.Client, error) {
	var dto ClientDTO

	err := r.db.WithContext(ctx).Where("api_token = ?", token).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return dto.toDomain()
}
