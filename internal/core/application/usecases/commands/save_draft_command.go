package commands

import (
	"errors"

	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrSaveDraftCommandIsNotConstructed = errors.New(
	"SaveDraftCommand must be created via NewSaveDraftCommand constructor",
)

// SaveDraftCommand represents a request to persist one step of the booking
// wizard in the draft cache. The step name is parsed at construction, so
// an unknown step fails here, before any cache mutation.
type SaveDraftCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	draftID kernel.UUID
	step    draft.Step
	data    map[string]any

	guard guard.ConstructorGuard
}

// NewSaveDraftCommand creates a command to save a wizard draft step.
//
// Returns draft.ErrUnknownStep when the step name is not a savable step.
func NewSaveDraftCommand(
	userID kernel.UUID,
	draftID kernel.UUID,
	step string,
	data map[string]any,
) (SaveDraftCommand, error) {
	cmd := SaveDraftCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setDraftID(draftID),
		cmd.setStep(step),
	); err != nil {
		return SaveDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDraftCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftCommandIsNotConstructed)
}

// UserID returns the draft owner's identifier.
func (c SaveDraftCommand) UserID() kernel.UUID { return c.userID }

// DraftID returns the draft's identifier.
func (c SaveDraftCommand) DraftID() kernel.UUID { return c.draftID }

// Step returns the parsed wizard step.
func (c SaveDraftCommand) Step() draft.Step { return c.step }

// Data returns the raw form data of the step.
func (c SaveDraftCommand) Data() map[string]any { return c.data }

func (c *SaveDraftCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SaveDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *SaveDraftCommand) setStep(step string) error {
	parsed, err := draft.ParseStep(step)
	if err != nil {
		return err
	}

	c.step = parsed
	return nil
}
