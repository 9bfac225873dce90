package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

type NoteRepository interface {
	Insert(ctx context.Context, note *db_models.Note) error
	Update(ctx context.Context, note *db_models.Note) error
	Delete(ctx context.Context, id string, userID string) error
	FindByIdForUser(ctx context.Context, id string, userID string) (*db_models.Note, error)
	FindAllForUser(ctx context.Context, userID string) ([]db_models.Note, error)
	FindByIdsForUser(ctx context.Context, ids []string, userID string) ([]db_models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{
		db: db,
	}
}

func (n *noteRepository) Insert(ctx context.Context, note *db_models.Note) error {
	return n.db.WithContext(ctx).Create(note).Error
}

func (n *noteRepository) Update(ctx context.Context, note *db_models.Note) error {
	return n.db.WithContext(ctx).Save(note).Error
}

func (n *noteRepository) Delete(ctx context.Context, id string, userID string) error {
	return n.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Note{}).Error
}

func (n *noteRepository) FindByIdForUser(ctx context.Context, id string, userID string) (*db_models.Note, error) {
	var note db_models.Note
	err := n.db.WithContext(ctx).First(&note, "id = ? AND user_id = ?", id, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &note, nil
}

func (n *noteRepository) FindAllForUser(ctx context.Context, userID string) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}

	return notes, nil
}

// FindByIdsForUser returns only the notes that exist AND belong to userID.
// Unknown or foreign ids are skipped silently, so the result can be a subset
// of ids.
func (n *noteRepository) FindByIdsForUser(ctx context.Context, ids []string, userID string) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := n.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&notes).Error

	if err != nil {
		return nil, err
	}

	return notes, nil
}
