package http

import (
	"net/http"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type saveDraftRequest struct {
	Step string         `json:"step"`
	Data map[string]any `json:"data"`
}

type saveDraftResponse struct {
	Success bool   `json:"success"`
	DraftID string `json:"draftId"`
}

type saveDraftFailure struct {
	Success bool                      `json:"success"`
	Errors  requests.ValidationErrors `json:"errors"`
}

type draftResponse struct {
	Success bool        `json:"success"`
	Data    draft.Draft `json:"data"`
}

type wizardResponse struct {
	DraftID string                  `json:"draftId"`
	Drafts  []queries.DraftListItem `json:"drafts"`
}

// CreateWizard handles GET /api/v1/transportation/create - opens the booking
// wizard with a fresh draft identifier and the user's resumable drafts.
func (s *Server) CreateWizard(c echo.Context) error {
	actor := currentClient(c)

	query, err := queries.NewListDraftsQuery(actor.ID())
	if err != nil {
		return s.fail(c, "CreateWizard", err)
	}

	drafts, err := s.listDraftsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "CreateWizard", err)
	}

	return respond(c, http.StatusOK, wizardResponse{
		DraftID: kernel.NewUUID().String(),
		Drafts:  drafts,
	})
}

// SaveDraft handles PUT /api/v1/transportation/save-draft/:draftId - validates
// one wizard step and persists it as the user's draft.
func (s *Server) SaveDraft(c echo.Context) error {
	actor := currentClient(c)

	draftID, err := parseUUIDParam(c, "draftId")
	if err != nil {
		return s.fail(c, "SaveDraft", err)
	}

	var body saveDraftRequest
	if err = c.Bind(&body); err != nil {
		return s.fail(c, "SaveDraft", err)
	}
	if body.Data == nil {
		body.Data = map[string]any{}
	}

	step, err := draft.ParseStep(body.Step)
	if err != nil {
		return s.fail(c, "SaveDraft", err)
	}

	// Address and cargo steps reference the transportation created on the
	// first step; the wizard uses the draft identifier for it.
	if _, ok := body.Data["transportation_id"]; !ok {
		body.Data["transportation_id"] = draftID.String()
	}

	validationErrors, err := requests.ForStep(step, body.Data)
	if err != nil {
		return s.fail(c, "SaveDraft", err)
	}
	if !validationErrors.IsValid() {
		s.logger.Debugw("SaveDraft rejected", "draftId", draftID.String(), "errors", validationErrors)
		return respond(c, http.StatusUnprocessableEntity, saveDraftFailure{
			Success: false,
			Errors:  validationErrors,
		})
	}

	cmd, err := commands.NewSaveDraftCommand(actor.ID(), draftID, body.Step, body.Data)
	if err != nil {
		return s.fail(c, "SaveDraft", err)
	}

	if err = s.saveDraftHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, "SaveDraft", err)
	}

	return respond(c, http.StatusOK, saveDraftResponse{
		Success: true,
		DraftID: draftID.String(),
	})
}

// GetDraft handles GET /api/v1/transportation/draft/:draftId - returns the
// saved draft, or 204 when it never existed or has expired.
func (s *Server) GetDraft(c echo.Context) error {
	actor := currentClient(c)

	draftID, err := parseUUIDParam(c, "draftId")
	if err != nil {
		return s.fail(c, "GetDraft", err)
	}

	query, err := queries.NewGetDraftQuery(actor.ID(), draftID)
	if err != nil {
		return s.fail(c, "GetDraft", err)
	}

	found, err := s.getDraftHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "GetDraft", err)
	}
	if found == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return respond(c, http.StatusOK, draftResponse{
		Success: true,
		Data:    *found,
	})
}
