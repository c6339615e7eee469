// Package draft models the ephemeral, cache-resident state of the booking
// wizard. A Draft is the last saved step of a partially filled form; it
// never touches the relational store and expires with its cache TTL.
package draft

import (
	"time"
)

// Draft is the cache payload for one wizard draft: the step the user last
// saved, the raw form data of that step, and the save timestamp. Data is
// kept as submitted; validation happens before the draft is written.
type Draft struct {
	Step      Step           `json:"step"`
	Data      map[string]any `json:"data"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewDraft creates a draft snapshot stamped with the given save time.
func NewDraft(step Step, data map[string]any, savedAt time.Time) (Draft, error) {
	if _, err := ParseStep(string(step)); err != nil {
		return Draft{}, err
	}

	return Draft{
		Step:      step,
		Data:      data,
		UpdatedAt: savedAt,
	}, nil
}

// Name extracts the request name from a transportation-step draft. Returns
// the fallback when the draft holds another step or no name yet.
func (d Draft) Name(fallback string) string {
	if d.Step != TransportationStep {
		return fallback
	}
	if name, ok := d.Data["name"].(string); ok && name != "" {
		return name
	}
	return fallback
}
