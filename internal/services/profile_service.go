package services

import (
	"context"

	"github.com/google/uuid"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpsertProfile(ctx context.Context, request request_models.UpsertProfileRequest, userID string) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile returns nil without error when the user has no profile yet.
func (p *ProfileService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, nil
	}

	return toProfileResponse(profile), nil
}

func (p *ProfileService) UpsertProfile(ctx context.Context, request request_models.UpsertProfileRequest, userID string) (*response_models.ProfileResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		UserID:         uid,
		TravelType:     request.TravelType,
		TravelStyle:    request.TravelStyle,
		MealPreference: request.MealPreference,
	}

	if err := p.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		UserID:         profile.UserID.String(),
		TravelType:     profile.TravelType,
		TravelStyle:    profile.TravelStyle,
		MealPreference: profile.MealPreference,
	}
}
