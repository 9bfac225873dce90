package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo,
	provideProfileService,
	provideProfileController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}

func provideProfileController(profileService services.ProfileServiceInterface) *controllers.ProfileController {
	return controllers.NewProfileController(profileService)
}
