package refdata

import (
	"context"
	"sync"

	"shipping/internal/core/domain/model/ref"

	"gorm.io/gorm"
)

// CachedCountryRepository implements CountryRepository with an in-memory
// cache loaded from PostgreSQL.
type CachedCountryRepository struct {
	db *gorm.DB

	mu        sync.RWMutex
	countries []ref.Country
	byID      map[int]ref.Country
	byName    map[string]ref.Country
}

// NewCachedCountryRepository creates a country repository and loads the cache.
func NewCachedCountryRepository(ctx context.Context, db *gorm.DB) (*CachedCountryRepository, error) {
	r := &CachedCountryRepository{db: db}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh reloads the cache from the database.
func (r *CachedCountryRepository) Refresh(ctx context.Context) error {
	var dtos []CountryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return err
	}

	countries := make([]ref.Country, 0, len(dtos))
	byID := make(map[int]ref.Country, len(dtos))
	byName := make(map[string]ref.Country, len(dtos))
	for _, dto := range dtos {
		country := dto.toDomain()
		countries = append(countries, country)
		byID[country.ID] = country
		byName[normalizeName(country.Name)] = country
		// Forms may send the ISO2 code instead of the native name.
		byName[normalizeName(country.ISO2)] = country
	}

	r.mu.Lock()
	r.countries = countries
	r.byID = byID
	r.byName = byName
	r.mu.Unlock()
	return nil
}

// GetAll returns every known country.
func (r *CachedCountryRepository) GetAll(_ context.Context) ([]ref.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	countries := make([]ref.Country, len(r.countries))
	copy(countries, r.countries)
	return countries, nil
}

// FindByName resolves a country name or ISO2 code case-insensitively.
func (r *CachedCountryRepository) FindByName(_ context.Context, name string) (*ref.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if country, ok := r.byName[normalizeName(name)]; ok {
		return &country, nil
	}
	return nil, nil
}

// FindByID resolves a country reference identifier.
func (r *CachedCountryRepository) FindByID(_ context.Context, id int) (*ref.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if country, ok := r.byID[id]; ok {
		return &country, nil
	}
	return nil, nil
}
