package db_models

import (
	"github.com/google/uuid"
)

// TripPlan is the single latest generated itinerary per user. Generations
// upsert this row; previous plans are overwritten, not versioned.
type TripPlan struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Plan         string    `gorm:"type:text"`
	StartCity    string
	StartCountry string
	MaxDistance  float64
}
