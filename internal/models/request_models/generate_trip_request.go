package request_models

import (
	"github.com/google/uuid"

	"tripplanner/pkg/utils"
)

type GenerateTripRequest struct {
	StartCountry    string   `json:"start_country"`
	StartCity       string   `json:"start_city"`
	MaxDistance     float64  `json:"max_distance"`
	SelectedNoteIDs []string `json:"selected_note_ids"`
}

// Validate checks the fields in a fixed order and stops at the first invalid
// one. Nothing downstream of validation ever sees a bad request.
func (r *GenerateTripRequest) Validate() *utils.ValidationError {
	if r.StartCountry == "" {
		return utils.NewValidationError("start_country", "Start country is required")
	}
	if r.StartCity == "" {
		return utils.NewValidationError("start_city", "Start city is required")
	}
	if r.MaxDistance <= 0 {
		return utils.NewValidationError("max_distance", "Max distance must be positive")
	}
	for _, id := range r.SelectedNoteIDs {
		if _, err := uuid.Parse(id); err != nil {
			return utils.NewValidationError("selected_note_ids", "Note ids must be valid UUIDs")
		}
	}
	return nil
}
