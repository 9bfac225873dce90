package services

import (
	"fmt"
	"strings"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
)

const notePreviewLength = 100

// GenerateFallbackPlan produces the deterministic template itinerary used
// whenever the AI path is unavailable. Identical input always yields a
// byte-identical string; the only varying field of a trip plan, the
// generation timestamp, is set by the caller.
func GenerateFallbackPlan(request request_models.GenerateTripRequest, notesText []string, profile *db_models.Profile) string {
	var b strings.Builder

	if profile != nil {
		lines := preferenceLines(profile)
		if len(lines) > 0 {
			b.WriteString("👤 Your travel preferences:\n")
			for _, line := range lines {
				b.WriteString("- " + line + "\n")
			}
			b.WriteString("\n")
		}
	}

	maxKm := formatKm(request.MaxDistance)
	nearbyKm := formatKm(request.MaxDistance / 2)

	fmt.Fprintf(&b, "🌍 Trip plan from %s, %s (maximum distance: %s km):\n\n", request.StartCity, request.StartCountry, maxKm)

	b.WriteString("🗓️ Day 1:\n")
	fmt.Fprintf(&b, "🏙️ Start your journey in %s\n", request.StartCity)
	b.WriteString("🏛️ Explore the local attractions\n")
	b.WriteString("🏨 Overnight stay in the city centre\n\n")

	b.WriteString("🗓️ Day 2:\n")
	fmt.Fprintf(&b, "🚗 Day trip to nearby towns (distance < %s km)\n", nearbyKm)
	b.WriteString("🌆 Return to base in the evening\n\n")

	b.WriteString("🗓️ Day 3:\n")
	fmt.Fprintf(&b, "🚂 Venture further out, up to %s km away\n", maxKm)
	b.WriteString("🏠 Head back home\n\n")

	if len(notesText) > 0 {
		b.WriteString("📝 Notes considered:\n")
		for i, text := range notesText {
			fmt.Fprintf(&b, "- Note %d: %s\n", i+1, notePreview(text))
		}
	}

	return b.String()
}

func notePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= notePreviewLength {
		return text
	}
	return string(runes[:notePreviewLength]) + "..."
}
