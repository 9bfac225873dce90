package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	Notes        []Note    `gorm:"foreignKey:UserID"`
	Profile      *Profile  `gorm:"foreignKey:UserID"`
	TripPlan     *TripPlan `gorm:"foreignKey:UserID"`
}
