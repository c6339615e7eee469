package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipperTransportationQueryHandler retrieves one transportation from
// the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern. Soft-deleted requests are treated as absent.
type GetShipperTransportationQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperTransportationQueryHandler creates a handler for single
// transportation reads. Requires a GORM database connection.
func NewGetShipperTransportationQueryHandler(db *gorm.DB) GetShipperTransportationQueryHandler {
	return GetShipperTransportationQueryHandler{db: db}
}

// Handle executes the query.
//
// Returns:
//   - errs.ObjectNotFoundError when no live request has the given ID
//   - transportation.ErrAccessForbidden when the request belongs to
//     another client
func (h GetShipperTransportationQueryHandler) Handle(
	ctx context.Context,
	query GetShipperTransportationQuery,
) (TransportationResponse, error) {
	if err := query.Validate(); err != nil {
		return TransportationResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			name,
			status,
			pickup_from,
			pickup_to,
			created_at
		FROM transportations
		WHERE id = ? AND deleted_at IS NULL
	`, query.TransportationID().Bytes()).Row()

	response, err := scanTransportationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TransportationResponse{}, errs.NewObjectNotFoundError(
				"transportationID", query.TransportationID().String())
		}
		return TransportationResponse{}, err
	}

	if !response.ClientID.IsEqual(query.ClientID()) {
		return TransportationResponse{}, transportation.ErrAccessForbidden
	}

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransportationRow maps one transportations row to the read model.
func scanTransportationRow(row rowScanner) (TransportationResponse, error) {
	var response TransportationResponse
	var id, clientID uuid.UUID
	var status int

	if err := row.Scan(
		&id,
		&clientID,
		&response.Name,
		&status,
		&response.PickupFrom,
		&response.PickupTo,
		&response.CreatedAt,
	); err != nil {
		return TransportationResponse{}, err
	}

	transportationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	response.ID = transportationID

	ownerID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	response.ClientID = ownerID

	parsedStatus := transportation.Status(status)
	if err := parsedStatus.Validate(); err != nil {
		return TransportationResponse{}, err
	}
	response.Status = parsedStatus
	response.StatusLabel = parsedStatus.Label()

	return response, nil
}
