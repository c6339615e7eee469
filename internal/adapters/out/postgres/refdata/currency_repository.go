package refdata

import (
	"context"
	"strings"
	"sync"

	"shipping/internal/core/domain/model/ref"

	"gorm.io/gorm"
)

// CachedCurrencyRepository implements CurrencyRepository with an in-memory
// cache loaded from PostgreSQL. It also serves as the currency catalog for
// Money construction, HasCurrency never touches the database.
type CachedCurrencyRepository struct {
	db *gorm.DB

	mu         sync.RWMutex
	currencies []ref.Currency
	byCode     map[string]ref.Currency
}

// NewCachedCurrencyRepository creates a currency repository and loads the cache.
func NewCachedCurrencyRepository(ctx context.Context, db *gorm.DB) (*CachedCurrencyRepository, error) {
	r := &CachedCurrencyRepository{db: db}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh reloads the cache from the database.
func (r *CachedCurrencyRepository) Refresh(ctx context.Context) error {
	var dtos []CurrencyDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return err
	}

	currencies := make([]ref.Currency, 0, len(dtos))
	byCode := make(map[string]ref.Currency, len(dtos))
	for _, dto := range dtos {
		currency := dto.toDomain()
		currencies = append(currencies, currency)
		byCode[strings.ToUpper(currency.Code)] = currency
	}

	r.mu.Lock()
	r.currencies = currencies
	r.byCode = byCode
	r.mu.Unlock()
	return nil
}

// GetAll returns every known currency.
func (r *CachedCurrencyRepository) GetAll(_ context.Context) ([]ref.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := make([]ref.Currency, len(r.currencies))
	copy(currencies, r.currencies)
	return currencies, nil
}

// HasCurrency reports whether the ISO code is in the reference set.
func (r *CachedCurrencyRepository) HasCurrency(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byCode[strings.ToUpper(code)]
	return ok
}
