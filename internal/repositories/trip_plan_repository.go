package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripplanner/internal/models/db_models"
)

type TripPlanRepository interface {
	FindByUserId(ctx context.Context, userID string) (*db_models.TripPlan, error)
	Upsert(ctx context.Context, plan *db_models.TripPlan) error
}

type tripPlanRepository struct {
	db *gorm.DB
}

func NewTripPlanRepository(db *gorm.DB) TripPlanRepository {
	return &tripPlanRepository{
		db: db,
	}
}

func (t *tripPlanRepository) FindByUserId(ctx context.Context, userID string) (*db_models.TripPlan, error) {
	var plan db_models.TripPlan
	err := t.db.WithContext(ctx).First(&plan, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// Upsert keeps at most one plan row per user. Concurrent generations for the
// same user race on this row and the last write wins.
func (t *tripPlanRepository) Upsert(ctx context.Context, plan *db_models.TripPlan) error {
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plan", "start_city", "start_country", "max_distance", "updated_at"}),
		}).
		Create(plan).Error
}
