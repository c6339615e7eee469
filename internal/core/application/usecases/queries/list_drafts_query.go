package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

// untitledDraftName labels drafts whose payload carries no name yet.
const untitledDraftName = "Untitled Transportation"

var ErrListDraftsQueryIsNotConstructed = errors.New(
	"ListDraftsQuery must be created via NewListDraftsQuery constructor",
)

// ListDraftsQuery enumerates the user's pending drafts.
type ListDraftsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDraftsQuery creates a query for the user's draft list.
func NewListDraftsQuery(userID kernel.UUID) (ListDraftsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListDraftsQuery{}, err
	}

	return ListDraftsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDraftsQuery) Validate() error {
	return q.guard.Validate(ErrListDraftsQueryIsNotConstructed)
}

// UserID returns the draft owner's identifier.
func (q ListDraftsQuery) UserID() kernel.UUID {
	return q.userID
}

// DraftListItem is one entry in the user's draft list.
type DraftListItem struct {
	DraftID   string `json:"draftId"`
	Name      string `json:"name"`
	Step      string `json:"step"`
	UpdatedAt string `json:"updatedAt"`
}
