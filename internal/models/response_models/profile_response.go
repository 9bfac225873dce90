package response_models

type ProfileResponse struct {
	UserID         string  `json:"user_id"`
	TravelType     *string `json:"travel_type"`
	TravelStyle    *string `json:"travel_style"`
	MealPreference *string `json:"meal_preference"`
}
