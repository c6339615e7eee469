package refdata

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the baseline reference records. Existing rows are left
// untouched, so the seed is safe to run on every startup.
func Seed(ctx context.Context, db *gorm.DB) error {
	currencies := []CurrencyDTO{
		{ID: 1, Code: "RUB", Symbol: "₽"},
		{ID: 2, Code: "EUR", Symbol: "€"},
		{ID: 3, Code: "USD", Symbol: "$"},
	}

	countries := []CountryDTO{
		{ID: 1, Name: "Russia", ISO2: "RU"},
		{ID: 2, Name: "Germany", ISO2: "DE"},
		{ID: 3, Name: "United States", ISO2: "US"},
	}

	cities := []CityDTO{
		{ID: 1, CountryID: 1, Name: "Moscow"},
		{ID: 2, CountryID: 1, Name: "Saint Petersburg"},
		{ID: 3, CountryID: 2, Name: "Berlin"},
		{ID: 4, CountryID: 2, Name: "Hamburg"},
		{ID: 5, CountryID: 3, Name: "New York"},
		{ID: 6, CountryID: 3, Name: "Chicago"},
	}

	tx := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})
	if err := tx.Create(&currencies).Error; err != nil {
		return err
	}
	if err := tx.Create(&countries).Error; err != nil {
		return err
	}
	return tx.Create(&cities).Error
}
