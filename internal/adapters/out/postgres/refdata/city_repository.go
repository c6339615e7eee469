package refdata

import (
	"context"
	"strings"
	"sync"

	"shipping/internal/core/domain/model/ref"

	"gorm.io/gorm"
)

// CachedCityRepository implements CityRepository with an in-memory cache
// loaded from PostgreSQL.
type CachedCityRepository struct {
	db *gorm.DB

	mu     sync.RWMutex
	cities []ref.City
	byID   map[int]ref.City
	byName map[string]ref.City
}

// NewCachedCityRepository creates a city repository and loads the cache.
func NewCachedCityRepository(ctx context.Context, db *gorm.DB) (*CachedCityRepository, error) {
	r := &CachedCityRepository{db: db}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh reloads the cache from the database.
func (r *CachedCityRepository) Refresh(ctx context.Context) error {
	var dtos []CityDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return err
	}

	cities := make([]ref.City, 0, len(dtos))
	byID := make(map[int]ref.City, len(dtos))
	byName := make(map[string]ref.City, len(dtos))
	for _, dto := range dtos {
		city := dto.toDomain()
		cities = append(cities, city)
		byID[city.ID] = city
		byName[normalizeName(city.Name)] = city
	}

	r.mu.Lock()
	r.cities = cities
	r.byID = byID
	r.byName = byName
	r.mu.Unlock()
	return nil
}

// GetAll returns every known city.
func (r *CachedCityRepository) GetAll(_ context.Context) ([]ref.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cities := make([]ref.City, len(r.cities))
	copy(cities, r.cities)
	return cities, nil
}

// FindByName resolves a city name case-insensitively.
func (r *CachedCityRepository) FindByName(_ context.Context, name string) (*ref.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if city, ok := r.byName[normalizeName(name)]; ok {
		return &city, nil
	}
	return nil, nil
}

// FindByID resolves a city reference identifier.
func (r *CachedCityRepository) FindByID(_ context.Context, id int) (*ref.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if city, ok := r.byID[id]; ok {
		return &city, nil
	}
	return nil, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
