package response_models

type TripPlanResponse struct {
	Plan         string   `json:"plan"`
	NotesUsed    []string `json:"notes_used"`
	GeneratedAt  string   `json:"generated_at"`
	StartCountry string   `json:"start_country,omitempty"`
	StartCity    string   `json:"start_city,omitempty"`
	MaxDistance  float64  `json:"max_distance,omitempty"`
}
