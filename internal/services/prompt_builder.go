package services

import (
	"fmt"
	"strconv"
	"strings"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
)

// BuildTripPrompt assembles the user prompt for the chat model. Pure: same
// request, notes and profile always produce the same prompt.
func BuildTripPrompt(request request_models.GenerateTripRequest, notesText []string, profile *db_models.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a multi-day trip itinerary starting from %s, %s.\n", request.StartCity, request.StartCountry)
	fmt.Fprintf(&b, "Every destination must be within %s km of the starting city.\n", formatKm(request.MaxDistance))
	b.WriteString("Structure the plan with a numbered header for each day (Day 1, Day 2, and so on).\n")
	b.WriteString("Mark each itinerary item with a fitting travel-themed emoji.\n")

	if profile != nil {
		lines := preferenceLines(profile)
		if len(lines) > 0 {
			b.WriteString("\nTraveller preferences:\n")
			for _, line := range lines {
				b.WriteString(line + "\n")
			}
		}
	}

	if len(notesText) > 0 {
		b.WriteString("\nTraveller notes to take into account:\n")
		for i, text := range notesText {
			fmt.Fprintf(&b, "Note %d: %s\n", i+1, text)
		}
	}

	return b.String()
}

func preferenceLines(profile *db_models.Profile) []string {
	var lines []string
	if profile.TravelType != nil {
		lines = append(lines, "Travel type: "+*profile.TravelType)
	}
	if profile.TravelStyle != nil {
		lines = append(lines, "Travel style: "+*profile.TravelStyle)
	}
	if profile.MealPreference != nil {
		lines = append(lines, "Meal preference: "+*profile.MealPreference)
	}
	return lines
}

// formatKm renders distances without a trailing ".0" so whole numbers read
// naturally in the plan text.
func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
