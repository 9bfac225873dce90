package trip_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideTripPlanRepo,
	provideChatClient,
	provideTripGenerationService,
	provideTripPlanService,
	provideTripController)

func provideTripPlanRepo(db *gorm.DB) repositories.TripPlanRepository {
	return repositories.NewTripPlanRepository(db)
}

// provideChatClient builds the OpenRouter client from environment variables.
// The config is assembled once here and stays immutable afterwards.
func provideChatClient() utils.ChatClientInterface {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENROUTER_API_KEY is required")
	}

	config := utils.OpenRouterConfig{
		APIKey:         apiKey,
		Endpoint:       getEnvWithDefault("OPENROUTER_API_ENDPOINT", "https://openrouter.ai/api/v1/chat/completions"),
		Model:          getEnvWithDefault("OPENROUTER_MODEL", "gpt-4o-mini"),
		Temperature:    0.7,
		MaxTokens:      1000,
		SystemMessage:  "You are a helpful travel planning assistant producing detailed, realistic itineraries.",
		RequestTimeout: getTimeoutFromEnv("OPENROUTER_TIMEOUT_SECONDS", 30*time.Second),
	}

	log.Printf("Initializing OpenRouter client with model: %s", config.Model)

	return utils.NewOpenRouterClient(config)
}

func provideTripGenerationService(
	noteRepo repositories.NoteRepository,
	profileRepo repositories.ProfileRepository,
	planRepo repositories.TripPlanRepository,
	chatClient utils.ChatClientInterface,
) services.TripGenerationServiceInterface {
	return services.NewTripGenerationService(noteRepo, profileRepo, planRepo, chatClient)
}

func provideTripPlanService(planRepo repositories.TripPlanRepository) services.TripPlanServiceInterface {
	return services.NewTripPlanService(planRepo)
}

func provideTripController(
	tripGenerationService services.TripGenerationServiceInterface,
	tripPlanService services.TripPlanServiceInterface,
) *controllers.TripController {
	return controllers.NewTripController(tripGenerationService, tripPlanService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getTimeoutFromEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Printf("Ignoring invalid %s value %q", key, value)
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
