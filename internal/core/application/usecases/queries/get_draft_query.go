package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery retrieves one saved draft payload for the given user.
type GetDraftQuery struct {
	userID  kernel.UUID
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDraftQuery creates a query for a single draft.
func NewGetDraftQuery(userID kernel.UUID, draftID kernel.UUID) (GetDraftQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}
	if err := draftID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}

	return GetDraftQuery{
		userID:  userID,
		draftID: draftID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// UserID returns the draft owner's identifier.
func (q GetDraftQuery) UserID() kernel.UUID {
	return q.userID
}

// DraftID returns the client-chosen draft identifier.
func (q GetDraftQuery) DraftID() kernel.UUID {
	return q.draftID
}
