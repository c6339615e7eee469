// Package ref holds the static reference records the booking flow resolves
// against: cities, countries and currencies. These are plain read models
// loaded from the relational store and served from in-memory caches.
package ref

// City is a reference city record.
type City struct {
	ID        int
	CountryID int
	Name      string
}

// Country is a reference country record.
type Country struct {
	ID   int
	Name string
	ISO2 string
}

// Currency is a reference currency record. Code is the ISO 4217 code used
// by Money values.
type Currency struct {
	ID     int
	Code   string
	Symbol string
}
