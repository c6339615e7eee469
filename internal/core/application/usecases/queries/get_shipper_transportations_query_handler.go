package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetShipperTransportationsQueryHandler lists a client's transportation
// requests, newest first, with pagination and optional filters.
type GetShipperTransportationsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperTransportationsQueryHandler creates a handler for
// transportation list reads. Requires a GORM database connection.
func NewGetShipperTransportationsQueryHandler(db *gorm.DB) GetShipperTransportationsQueryHandler {
	return GetShipperTransportationsQueryHandler{db: db}
}

// Handle executes the query and returns one page plus the total count
// of matching rows. An out-of-range page yields an empty Items slice.
func (h GetShipperTransportationsQueryHandler) Handle(
	ctx context.Context,
	query GetShipperTransportationsQuery,
) (PaginatedTransportations, error) {
	if err := query.Validate(); err != nil {
		return PaginatedTransportations{}, err
	}

	conditions := []string{"client_id = ?"}
	args := []any{query.ClientID().Bytes()}

	if !query.WithTrashed() {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	if from := query.CreatedAt().From(); from != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *from)
	}
	if to := query.CreatedAt().To(); to != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, to.AddDate(0, 0, 1))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM transportations WHERE "+where, args...).Row()
	if err := countRow.Scan(&total); err != nil {
		return PaginatedTransportations{}, err
	}

	result := PaginatedTransportations{
		Items:   []TransportationResponse{},
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}

	offset := (query.Page() - 1) * query.PerPage()
	pageArgs := append(args, query.PerPage(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			name,
			status,
			pickup_from,
			pickup_to,
			created_at
		FROM transportations
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return PaginatedTransportations{}, err
	}
	defer rows.Close()

	for rows.Next() {
		response, err := scanTransportationRow(rows)
		if err != nil {
			return PaginatedTransportations{}, err
		}
		result.Items = append(result.Items, response)
	}
	if err := rows.Err(); err != nil {
		return PaginatedTransportations{}, err
	}

	return result, nil
}
