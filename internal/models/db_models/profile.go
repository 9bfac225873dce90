package db_models

import (
	"github.com/google/uuid"
)

// Profile holds the travel preferences of an account. At most one row per
// user; every preference field is optional.
type Profile struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	TravelType     *string
	TravelStyle    *string
	MealPreference *string
}
