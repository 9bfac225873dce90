package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type NoteServiceInterface interface {
	GetAllNotes(ctx context.Context, userID string) ([]response_models.NoteResponse, error)
	GetNote(ctx context.Context, noteID string, userID string) (*response_models.NoteResponse, error)
	CreateNote(ctx context.Context, request request_models.CreateNoteRequest, userID string) (*response_models.NoteResponse, error)
	UpdateNote(ctx context.Context, noteID string, request request_models.UpdateNoteRequest, userID string) (*response_models.NoteResponse, error)
	DeleteNote(ctx context.Context, noteID string, userID string) error
}

type NoteService struct {
	noteRepo repositories.NoteRepository
}

func NewNoteService(noteRepo repositories.NoteRepository) NoteServiceInterface {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

func (n *NoteService) GetAllNotes(ctx context.Context, userID string) ([]response_models.NoteResponse, error) {
	notes, err := n.noteRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(&note))
	}

	return responses, nil
}

func (n *NoteService) GetNote(ctx context.Context, noteID string, userID string) (*response_models.NoteResponse, error) {
	note, err := n.noteRepo.FindByIdForUser(ctx, noteID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if note == nil {
		return nil, utils.ErrNoteNotFound
	}

	response := toNoteResponse(note)
	return &response, nil
}

func (n *NoteService) CreateNote(ctx context.Context, request request_models.CreateNoteRequest, userID string) (*response_models.NoteResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	note := &db_models.Note{
		UserID:      uid,
		NoteText:    request.NoteText,
		NoteSummary: request.NoteSummary,
	}

	if err := n.noteRepo.Insert(ctx, note); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toNoteResponse(note)
	return &response, nil
}

func (n *NoteService) UpdateNote(ctx context.Context, noteID string, request request_models.UpdateNoteRequest, userID string) (*response_models.NoteResponse, error) {
	note, err := n.noteRepo.FindByIdForUser(ctx, noteID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if note == nil {
		return nil, utils.ErrNoteNotFound
	}

	if request.NoteText != nil {
		note.NoteText = *request.NoteText
	}
	if request.NoteSummary != nil {
		note.NoteSummary = *request.NoteSummary
	}

	if err := n.noteRepo.Update(ctx, note); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toNoteResponse(note)
	return &response, nil
}

func (n *NoteService) DeleteNote(ctx context.Context, noteID string, userID string) error {
	note, err := n.noteRepo.FindByIdForUser(ctx, noteID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if note == nil {
		return utils.ErrNoteNotFound
	}

	if err := n.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func toNoteResponse(note *db_models.Note) response_models.NoteResponse {
	return response_models.NoteResponse{
		ID:          note.ID.String(),
		NoteText:    note.NoteText,
		NoteSummary: note.NoteSummary,
		CreatedAt:   time.Unix(note.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
