package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

var ErrGetShipperTransportationsQueryIsNotConstructed = errors.New(
	"GetShipperTransportationsQuery must be created via NewGetShipperTransportationsQuery constructor",
)

// GetShipperTransportationsQuery requests a page of the client's
// transportation requests, newest first.
type GetShipperTransportationsQuery struct {
	clientID    kernel.UUID
	page        int
	perPage     int
	withTrashed bool
	createdAt   kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetShipperTransportationsQuery creates a list query.
//
// Parameters:
//   - clientID: owner whose requests are listed
//   - page: 1-based page number, 0 means first page
//   - perPage: page size, 0 means the default of 20, capped at 100
//   - withTrashed: include soft-deleted requests
//   - createdAt: optional creation date filter, zero range matches all
func NewGetShipperTransportationsQuery(
	clientID kernel.UUID,
	page int,
	perPage int,
	withTrashed bool,
	createdAt kernel.DateRange,
) (GetShipperTransportationsQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetShipperTransportationsQuery{}, err
	}
	if page < 0 {
		return GetShipperTransportationsQuery{}, errs.NewValueIsOutOfRangeError(
			"page", page, 1, nil)
	}
	if perPage < 0 || perPage > maxPerPage {
		return GetShipperTransportationsQuery{}, errs.NewValueIsOutOfRangeError(
			"perPage", perPage, 1, maxPerPage)
	}

	if page == 0 {
		page = defaultPage
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}

	return GetShipperTransportationsQuery{
		clientID:    clientID,
		page:        page,
		perPage:     perPage,
		withTrashed: withTrashed,
		createdAt:   createdAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperTransportationsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperTransportationsQueryIsNotConstructed)
}

func (q GetShipperTransportationsQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q GetShipperTransportationsQuery) Page() int {
	return q.page
}

func (q GetShipperTransportationsQuery) PerPage() int {
	return q.perPage
}

func (q GetShipperTransportationsQuery) WithTrashed() bool {
	return q.withTrashed
}

func (q GetShipperTransportationsQuery) CreatedAt() kernel.DateRange {
	return q.createdAt
}

// PaginatedTransportations is a page of transportation read models
// together with the total number of matching rows.
type PaginatedTransportations struct {
	Items   []TransportationResponse
	Total   int64
	Page    int
	PerPage int
}
