package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type TripGenerationServiceInterface interface {
	GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripPlanResponse, error)
}

type TripGenerationService struct {
	noteRepo    repositories.NoteRepository
	profileRepo repositories.ProfileRepository
	planRepo    repositories.TripPlanRepository
	chatClient  utils.ChatClientInterface
}

func NewTripGenerationService(
	noteRepo repositories.NoteRepository,
	profileRepo repositories.ProfileRepository,
	planRepo repositories.TripPlanRepository,
	chatClient utils.ChatClientInterface,
) TripGenerationServiceInterface {
	return &TripGenerationService{
		noteRepo:    noteRepo,
		profileRepo: profileRepo,
		planRepo:    planRepo,
		chatClient:  chatClient,
	}
}

// GenerateTrip runs the whole generation pipeline. Only a validation failure
// surfaces as an error; every failure past validation degrades instead: a
// broken context read shrinks the context, a broken AI call substitutes the
// fallback plan, a broken save still returns the generated plan.
func (t *TripGenerationService) GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripPlanResponse, error) {
	if vErr := request.Validate(); vErr != nil {
		return nil, vErr
	}

	notesText := t.loadNotesText(ctx, userID, request.SelectedNoteIDs)
	profile := t.loadProfile(ctx, userID)

	planText, err := t.generateWithAI(ctx, request, notesText, profile)
	if err != nil {
		log.Printf("AI plan generation failed, falling back to template plan: %v", err)
		planText = GenerateFallbackPlan(request, notesText, profile)
	}

	// notes_used echoes the ids that were requested, not the ids that
	// resolved. A requested id that no longer exists is still listed.
	notesUsed := request.SelectedNoteIDs
	if notesUsed == nil {
		notesUsed = []string{}
	}

	tripPlan := &response_models.TripPlanResponse{
		Plan:         planText,
		NotesUsed:    notesUsed,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		StartCountry: request.StartCountry,
		StartCity:    request.StartCity,
		MaxDistance:  request.MaxDistance,
	}

	t.savePlan(ctx, userID, request, planText)

	return tripPlan, nil
}

// loadNotesText fetches the selected notes scoped to the user and returns
// their texts in the order the ids were requested. A failed read degrades to
// an empty context instead of failing the generation.
func (t *TripGenerationService) loadNotesText(ctx context.Context, userID string, selectedNoteIDs []string) []string {
	if len(selectedNoteIDs) == 0 {
		return nil
	}

	notes, err := t.noteRepo.FindByIdsForUser(ctx, selectedNoteIDs, userID)
	if err != nil {
		log.Printf("Failed to fetch notes for user %s, generating without them: %v", userID, err)
		return nil
	}

	textByID := make(map[string]string, len(notes))
	for _, note := range notes {
		textByID[note.ID.String()] = note.NoteText
	}

	notesText := make([]string, 0, len(notes))
	for _, id := range selectedNoteIDs {
		if text, ok := textByID[id]; ok {
			notesText = append(notesText, text)
		}
	}

	return notesText
}

func (t *TripGenerationService) loadProfile(ctx context.Context, userID string) *db_models.Profile {
	profile, err := t.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		log.Printf("Failed to fetch profile for user %s, generating without it: %v", userID, err)
		return nil
	}
	return profile
}

func (t *TripGenerationService) generateWithAI(ctx context.Context, request request_models.GenerateTripRequest, notesText []string, profile *db_models.Profile) (string, error) {
	prompt := BuildTripPrompt(request, notesText, profile)

	completion, err := t.chatClient.SendChatRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	return utils.ExtractPlanText(completion)
}

// savePlan upserts the single plan row for the user. Persistence is best
// effort: a failure is logged and the generated plan is still returned.
func (t *TripGenerationService) savePlan(ctx context.Context, userID string, request request_models.GenerateTripRequest, planText string) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		log.Printf("Cannot save trip plan, invalid user id %q: %v", userID, err)
		return
	}

	plan := &db_models.TripPlan{
		UserID:       uid,
		Plan:         planText,
		StartCity:    request.StartCity,
		StartCountry: request.StartCountry,
		MaxDistance:  request.MaxDistance,
	}

	if err := t.planRepo.Upsert(ctx, plan); err != nil {
		log.Printf("Failed to save trip plan for user %s: %v", userID, err)
	}
}
