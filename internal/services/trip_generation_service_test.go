package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

type stubNoteRepo struct {
	notes       []db_models.Note
	err         error
	lookupCalls int
}

func (s *stubNoteRepo) Insert(ctx context.Context, note *db_models.Note) error { return s.err }
func (s *stubNoteRepo) Update(ctx context.Context, note *db_models.Note) error { return s.err }
func (s *stubNoteRepo) Delete(ctx context.Context, id string, userID string) error {
	return s.err
}
func (s *stubNoteRepo) FindByIdForUser(ctx context.Context, id string, userID string) (*db_models.Note, error) {
	return nil, s.err
}
func (s *stubNoteRepo) FindAllForUser(ctx context.Context, userID string) ([]db_models.Note, error) {
	return s.notes, s.err
}
func (s *stubNoteRepo) FindByIdsForUser(ctx context.Context, ids []string, userID string) ([]db_models.Note, error) {
	s.lookupCalls++
	if s.err != nil {
		return nil, s.err
	}
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}
	var found []db_models.Note
	for _, note := range s.notes {
		if requested[note.ID.String()] {
			found = append(found, note)
		}
	}
	return found, nil
}

type stubProfileRepo struct {
	profile *db_models.Profile
	err     error
}

func (s *stubProfileRepo) FindByUserId(ctx context.Context, userID string) (*db_models.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileRepo) Upsert(ctx context.Context, profile *db_models.Profile) error {
	return s.err
}

type stubPlanRepo struct {
	rows        map[string]*db_models.TripPlan
	upsertErr   error
	upsertCalls int
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{rows: make(map[string]*db_models.TripPlan)}
}

func (s *stubPlanRepo) FindByUserId(ctx context.Context, userID string) (*db_models.TripPlan, error) {
	return s.rows[userID], nil
}
func (s *stubPlanRepo) Upsert(ctx context.Context, plan *db_models.TripPlan) error {
	s.upsertCalls++
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.rows[plan.UserID.String()] = plan
	return nil
}

type stubChatClient struct {
	completion *utils.ChatCompletion
	err        error
	calls      int
	lastPrompt string
}

func (s *stubChatClient) SendChatRequest(ctx context.Context, prompt string) (*utils.ChatCompletion, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func validRequest() request_models.GenerateTripRequest {
	return request_models.GenerateTripRequest{
		StartCountry: "Polska",
		StartCity:    "Warszawa",
		MaxDistance:  500,
	}
}

func newService(noteRepo *stubNoteRepo, profileRepo *stubProfileRepo, planRepo *stubPlanRepo, chat *stubChatClient) TripGenerationServiceInterface {
	return NewTripGenerationService(noteRepo, profileRepo, planRepo, chat)
}

func TestGenerateTripValidation(t *testing.T) {
	userID := uuid.New().String()

	cases := []struct {
		name    string
		request request_models.GenerateTripRequest
		field   string
	}{
		{
			name:    "empty country",
			request: request_models.GenerateTripRequest{StartCountry: "", StartCity: "Warsaw", MaxDistance: 100},
			field:   "start_country",
		},
		{
			name:    "empty city",
			request: request_models.GenerateTripRequest{StartCountry: "Poland", StartCity: "", MaxDistance: 100},
			field:   "start_city",
		},
		{
			name:    "zero distance",
			request: request_models.GenerateTripRequest{StartCountry: "Poland", StartCity: "Warsaw", MaxDistance: 0},
			field:   "max_distance",
		},
		{
			name:    "negative distance",
			request: request_models.GenerateTripRequest{StartCountry: "Poland", StartCity: "Warsaw", MaxDistance: -5},
			field:   "max_distance",
		},
		{
			name: "malformed note id",
			request: request_models.GenerateTripRequest{
				StartCountry: "Poland", StartCity: "Warsaw", MaxDistance: 100,
				SelectedNoteIDs: []string{"not-a-uuid"},
			},
			field: "selected_note_ids",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chat := &stubChatClient{}
			planRepo := newStubPlanRepo()
			service := newService(&stubNoteRepo{}, &stubProfileRepo{}, planRepo, chat)

			plan, err := service.GenerateTrip(context.Background(), userID, tc.request)

			require.Error(t, err)
			require.Nil(t, plan)

			var validationErr *utils.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tc.field)
			assert.Len(t, validationErr.Fields, 1)

			// a rejected request must have no side effects
			assert.Zero(t, chat.calls)
			assert.Zero(t, planRepo.upsertCalls)
		})
	}

	t.Run("first invalid field wins", func(t *testing.T) {
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), &stubChatClient{})

		_, err := service.GenerateTrip(context.Background(), userID, request_models.GenerateTripRequest{})

		var validationErr *utils.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "start_country")
		assert.Len(t, validationErr.Fields, 1)
	})
}

func TestGenerateTripAIPath(t *testing.T) {
	userID := uuid.New().String()

	t.Run("uses the AI plan when the call succeeds", func(t *testing.T) {
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "AI itinerary"}}
		planRepo := newStubPlanRepo()
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, planRepo, chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "AI itinerary", plan.Plan)
		assert.Equal(t, 1, chat.calls)

		saved := planRepo.rows[userID]
		require.NotNil(t, saved)
		assert.Equal(t, "AI itinerary", saved.Plan)
		assert.Equal(t, "Warszawa", saved.StartCity)
		assert.Equal(t, float64(500), saved.MaxDistance)
	})

	t.Run("exactly one outbound call per generation", func(t *testing.T) {
		chat := &stubChatClient{err: utils.ErrLLMTransport}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		_, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, chat.calls)
	})

	t.Run("prompt carries notes and profile", func(t *testing.T) {
		noteID := uuid.New()
		noteRepo := &stubNoteRepo{notes: []db_models.Note{
			{BaseModel: db_models.BaseModel{ID: noteID}, NoteText: "I love castles"},
		}}
		profileRepo := &stubProfileRepo{profile: &db_models.Profile{TravelType: strPtr("sightseeing")}}
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(noteRepo, profileRepo, newStubPlanRepo(), chat)

		request := validRequest()
		request.SelectedNoteIDs = []string{noteID.String()}

		_, err := service.GenerateTrip(context.Background(), userID, request)

		require.NoError(t, err)
		assert.Contains(t, chat.lastPrompt, "Note 1: I love castles")
		assert.Contains(t, chat.lastPrompt, "Travel type: sightseeing")
	})
}

func TestGenerateTripFallback(t *testing.T) {
	userID := uuid.New().String()

	t.Run("transport failure substitutes the fallback plan byte for byte", func(t *testing.T) {
		chat := &stubChatClient{err: utils.ErrLLMTransport}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		request := validRequest()
		plan, err := service.GenerateTrip(context.Background(), userID, request)

		require.NoError(t, err)
		assert.Equal(t, GenerateFallbackPlan(request, nil, nil), plan.Plan)
	})

	t.Run("malformed response substitutes the fallback plan", func(t *testing.T) {
		chat := &stubChatClient{completion: &utils.ChatCompletion{}}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		request := validRequest()
		plan, err := service.GenerateTrip(context.Background(), userID, request)

		require.NoError(t, err)
		assert.Equal(t, GenerateFallbackPlan(request, nil, nil), plan.Plan)
	})

	t.Run("fallback plan still satisfies the itinerary contract", func(t *testing.T) {
		chat := &stubChatClient{err: utils.ErrLLMUpstream}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, plan.Plan)
		assert.Contains(t, plan.Plan, "Warszawa")
		assert.Contains(t, plan.Plan, "500")
		assert.Contains(t, plan.Plan, "Day 1:")
		assert.Contains(t, plan.Plan, "Day 2:")
		assert.Contains(t, plan.Plan, "Day 3:")
	})
}

func TestGenerateTripContext(t *testing.T) {
	userID := uuid.New().String()

	t.Run("notes_used echoes requested ids even when some do not resolve", func(t *testing.T) {
		ownedID := uuid.New()
		missingID := uuid.New().String()
		noteRepo := &stubNoteRepo{notes: []db_models.Note{
			{BaseModel: db_models.BaseModel{ID: ownedID}, NoteText: "only this one"},
		}}
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(noteRepo, &stubProfileRepo{}, newStubPlanRepo(), chat)

		request := validRequest()
		request.SelectedNoteIDs = []string{ownedID.String(), missingID}

		plan, err := service.GenerateTrip(context.Background(), userID, request)

		require.NoError(t, err)
		assert.Equal(t, []string{ownedID.String(), missingID}, plan.NotesUsed)
		assert.Contains(t, chat.lastPrompt, "Note 1: only this one")
		assert.NotContains(t, chat.lastPrompt, "Note 2:")
	})

	t.Run("notes_used is empty not nil without selected notes", func(t *testing.T) {
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.NotNil(t, plan.NotesUsed)
		assert.Empty(t, plan.NotesUsed)
	})

	t.Run("note store failure degrades to empty context", func(t *testing.T) {
		noteRepo := &stubNoteRepo{err: utils.ErrDatabaseError}
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(noteRepo, &stubProfileRepo{}, newStubPlanRepo(), chat)

		request := validRequest()
		request.SelectedNoteIDs = []string{uuid.New().String()}

		plan, err := service.GenerateTrip(context.Background(), userID, request)

		require.NoError(t, err)
		assert.Equal(t, "ok", plan.Plan)
		assert.NotContains(t, chat.lastPrompt, "Traveller notes")
	})

	t.Run("profile store failure degrades to no preferences", func(t *testing.T) {
		profileRepo := &stubProfileRepo{err: utils.ErrDatabaseError}
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(&stubNoteRepo{}, profileRepo, newStubPlanRepo(), chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "ok", plan.Plan)
		assert.NotContains(t, chat.lastPrompt, "Traveller preferences")
	})

	t.Run("absent note ids are not looked up", func(t *testing.T) {
		noteRepo := &stubNoteRepo{}
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(noteRepo, &stubProfileRepo{}, newStubPlanRepo(), chat)

		_, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.Zero(t, noteRepo.lookupCalls)
	})
}

func TestGenerateTripPersistence(t *testing.T) {
	userID := uuid.New().String()

	t.Run("persistence failure does not fail the call", func(t *testing.T) {
		planRepo := newStubPlanRepo()
		planRepo.upsertErr = utils.ErrDatabaseError
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, planRepo, chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "ok", plan.Plan)
		assert.Equal(t, 1, planRepo.upsertCalls)
	})

	t.Run("two generations leave one row holding the second plan", func(t *testing.T) {
		planRepo := newStubPlanRepo()
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "first plan"}}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, planRepo, chat)

		_, err := service.GenerateTrip(context.Background(), userID, validRequest())
		require.NoError(t, err)

		chat.completion = &utils.ChatCompletion{Content: "second plan"}
		_, err = service.GenerateTrip(context.Background(), userID, validRequest())
		require.NoError(t, err)

		assert.Len(t, planRepo.rows, 1)
		assert.Equal(t, "second plan", planRepo.rows[userID].Plan)
	})

	t.Run("generated_at is a valid RFC3339 timestamp", func(t *testing.T) {
		chat := &stubChatClient{completion: &utils.ChatCompletion{Content: "ok"}}
		service := newService(&stubNoteRepo{}, &stubProfileRepo{}, newStubPlanRepo(), chat)

		plan, err := service.GenerateTrip(context.Background(), userID, validRequest())

		require.NoError(t, err)
		_, parseErr := time.Parse(time.RFC3339, plan.GeneratedAt)
		assert.NoError(t, parseErr)
	})
}
