package notes_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideNoteRepo,
	provideNoteService,
	provideNotesController)

func provideNoteRepo(db *gorm.DB) repositories.NoteRepository {
	return repositories.NewNoteRepository(db)
}

func provideNoteService(noteRepo repositories.NoteRepository) services.NoteServiceInterface {
	return services.NewNoteService(noteRepo)
}

func provideNotesController(noteService services.NoteServiceInterface) *controllers.NotesController {
	return controllers.NewNotesController(noteService)
}
