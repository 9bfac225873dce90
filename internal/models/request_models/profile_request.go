package request_models

type UpsertProfileRequest struct {
	TravelType     *string `json:"travel_type"`
	TravelStyle    *string `json:"travel_style"`
	MealPreference *string `json:"meal_preference"`
}
