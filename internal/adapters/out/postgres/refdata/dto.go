// Package refdata serves the reference records the booking flow resolves
// against. All three sets are small and change rarely, so repositories load
// them from PostgreSQL into in-memory caches and serve lookups without
// touching the database. A periodic job calls Refresh to pick up changes.
package refdata

import "shipping/internal/core/domain/model/ref"

// CityDTO represents the database structure for reference cities.
type CityDTO struct {
	ID        int    `gorm:"primaryKey"`
	CountryID int    `gorm:"index"`
	Name      string `gorm:"size:255;index"`
}

// TableName specifies the database table name for city records.
func (CityDTO) TableName() string {
	return "cities"
}

func (dto CityDTO) toDomain() ref.City {
	return ref.City{ID: dto.ID, CountryID: dto.CountryID, Name: dto.Name}
}

// CountryDTO represents the database structure for reference countries.
type CountryDTO struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:255;index"`
	ISO2 string `gorm:"column:iso2;size:2"`
}

// TableName specifies the database table name for country records.
func (CountryDTO) TableName() string {
	return "countries"
}

func (dto CountryDTO) toDomain() ref.Country {
	return ref.Country{ID: dto.ID, Name: dto.Name, ISO2: dto.ISO2}
}

// CurrencyDTO represents the database structure for reference currencies.
type CurrencyDTO struct {
	ID     int    `gorm:"primaryKey"`
	Code   string `gorm:"size:3;uniqueIndex"`
	Symbol string `gorm:"size:8"`
}

// TableName specifies the database table name for currency records.
func (CurrencyDTO) TableName() string {
	return "currencies"
}

func (dto CurrencyDTO) toDomain() ref.Currency {
	return ref.Currency{ID: dto.ID, Code: dto.Code, Symbol: dto.Symbol}
}
