package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

type memoryNoteRepo struct {
	byID map[string]*db_models.Note
}

func newMemoryNoteRepo() *memoryNoteRepo {
	return &memoryNoteRepo{byID: make(map[string]*db_models.Note)}
}

func (m *memoryNoteRepo) Insert(ctx context.Context, note *db_models.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	m.byID[note.ID.String()] = note
	return nil
}

func (m *memoryNoteRepo) Update(ctx context.Context, note *db_models.Note) error {
	m.byID[note.ID.String()] = note
	return nil
}

func (m *memoryNoteRepo) Delete(ctx context.Context, id string, userID string) error {
	delete(m.byID, id)
	return nil
}

func (m *memoryNoteRepo) FindByIdForUser(ctx context.Context, id string, userID string) (*db_models.Note, error) {
	note, ok := m.byID[id]
	if !ok || note.UserID.String() != userID {
		return nil, nil
	}
	return note, nil
}

func (m *memoryNoteRepo) FindAllForUser(ctx context.Context, userID string) ([]db_models.Note, error) {
	var notes []db_models.Note
	for _, note := range m.byID {
		if note.UserID.String() == userID {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func (m *memoryNoteRepo) FindByIdsForUser(ctx context.Context, ids []string, userID string) ([]db_models.Note, error) {
	var notes []db_models.Note
	for _, id := range ids {
		if note, ok := m.byID[id]; ok && note.UserID.String() == userID {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func TestNoteService(t *testing.T) {
	userID := uuid.New().String()

	t.Run("create then get round trip", func(t *testing.T) {
		service := NewNoteService(newMemoryNoteRepo())

		created, err := service.CreateNote(context.Background(), request_models.CreateNoteRequest{
			NoteText:    "pack light",
			NoteSummary: "packing",
		}, userID)
		require.NoError(t, err)

		fetched, err := service.GetNote(context.Background(), created.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, "pack light", fetched.NoteText)
		assert.Equal(t, "packing", fetched.NoteSummary)
	})

	t.Run("getting a foreign note is not found", func(t *testing.T) {
		repo := newMemoryNoteRepo()
		service := NewNoteService(repo)

		created, err := service.CreateNote(context.Background(), request_models.CreateNoteRequest{NoteText: "mine"}, userID)
		require.NoError(t, err)

		_, err = service.GetNote(context.Background(), created.ID, uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrNoteNotFound)
	})

	t.Run("update changes only the provided fields", func(t *testing.T) {
		service := NewNoteService(newMemoryNoteRepo())

		created, err := service.CreateNote(context.Background(), request_models.CreateNoteRequest{
			NoteText:    "old text",
			NoteSummary: "keep me",
		}, userID)
		require.NoError(t, err)

		newText := "new text"
		updated, err := service.UpdateNote(context.Background(), created.ID, request_models.UpdateNoteRequest{NoteText: &newText}, userID)
		require.NoError(t, err)
		assert.Equal(t, "new text", updated.NoteText)
		assert.Equal(t, "keep me", updated.NoteSummary)
	})

	t.Run("delete removes the note", func(t *testing.T) {
		service := NewNoteService(newMemoryNoteRepo())

		created, err := service.CreateNote(context.Background(), request_models.CreateNoteRequest{NoteText: "gone soon"}, userID)
		require.NoError(t, err)

		require.NoError(t, service.DeleteNote(context.Background(), created.ID, userID))

		_, err = service.GetNote(context.Background(), created.ID, userID)
		assert.ErrorIs(t, err, utils.ErrNoteNotFound)
	})

	t.Run("deleting an unknown note is not found", func(t *testing.T) {
		service := NewNoteService(newMemoryNoteRepo())

		err := service.DeleteNote(context.Background(), uuid.New().String(), userID)
		assert.ErrorIs(t, err, utils.ErrNoteNotFound)
	})
}
