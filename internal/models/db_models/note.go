package db_models

import (
	"github.com/google/uuid"
)

type Note struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	NoteText    string    `gorm:"type:text"`
	NoteSummary string
}
