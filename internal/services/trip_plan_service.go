package services

import (
	"context"
	"time"

	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type TripPlanServiceInterface interface {
	GetPlan(ctx context.Context, userID string) (*response_models.TripPlanResponse, error)
}

type TripPlanService struct {
	planRepo repositories.TripPlanRepository
}

func NewTripPlanService(planRepo repositories.TripPlanRepository) TripPlanServiceInterface {
	return &TripPlanService{
		planRepo: planRepo,
	}
}

// GetPlan returns the latest persisted plan for the user, or nil when none
// has been generated yet. Having no plan is not an error.
func (t *TripPlanService) GetPlan(ctx context.Context, userID string) (*response_models.TripPlanResponse, error) {
	plan, err := t.planRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, nil
	}

	return &response_models.TripPlanResponse{
		Plan: plan.Plan,
		// The persisted row does not record which notes fed the plan.
		NotesUsed:    []string{},
		GeneratedAt:  time.Unix(plan.UpdatedAt, 0).UTC().Format(time.RFC3339),
		StartCountry: plan.StartCountry,
		StartCity:    plan.StartCity,
		MaxDistance:  plan.MaxDistance,
	}, nil
}
