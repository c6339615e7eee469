// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/pkg/guard"
)

var ErrGetShipperTransportationQueryIsNotConstructed = errors.New(
	"GetShipperTransportationQuery must be created via NewGetShipperTransportationQuery constructor",
)

// GetShipperTransportationQuery retrieves a single transportation owned by
// the authenticated shipper. Requests owned by other clients are rejected.
type GetShipperTransportationQuery struct {
	transportationID kernel.UUID
	clientID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperTransportationQuery creates a query for one transportation.
func NewGetShipperTransportationQuery(
	transportationID kernel.UUID,
	clientID kernel.UUID,
) (GetShipperTransportationQuery, error) {
	if err := transportationID.Validate(); err != nil {
		return GetShipperTransportationQuery{}, err
	}
	if err := clientID.Validate(); err != nil {
		return GetShipperTransportationQuery{}, err
	}

	return GetShipperTransportationQuery{
		transportationID: transportationID,
		clientID:         clientID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperTransportationQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperTransportationQueryIsNotConstructed)
}

// TransportationID returns the identifier of the request to fetch.
func (q GetShipperTransportationQuery) TransportationID() kernel.UUID {
	return q.transportationID
}

// ClientID returns the authenticated actor's identifier.
func (q GetShipperTransportationQuery) ClientID() kernel.UUID {
	return q.clientID
}

// TransportationResponse represents a transportation in the read model.
type TransportationResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	Name        string
	Status      transportation.Status
	StatusLabel string
	PickupFrom  time.Time
	PickupTo    time.Time
	CreatedAt   time.Time
}
