package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type NotesController struct {
	noteService services.NoteServiceInterface
}

func NewNotesController(noteService services.NoteServiceInterface) *NotesController {
	return &NotesController{
		noteService: noteService,
	}
}

// ListNotes godoc
// @Summary List all notes
// @Description Fetch all travel preference notes of the authenticated user, newest first
// @Tags Notes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes [get]
func (n *NotesController) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := n.noteService.GetAllNotes(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notes, "Notes fetched successfully")
}

// GetNote godoc
// @Summary Get a note by ID
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/{id} [get]
func (n *NotesController) GetNote(c *gin.Context) {
	noteID := c.Param("id")
	if noteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Note ID is required")
		return
	}

	userID := c.GetString("user_id")

	note, err := n.noteService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, note, "Note fetched successfully")
}

// CreateNote godoc
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body request_models.CreateNoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes [post]
func (n *NotesController) CreateNote(c *gin.Context) {
	var req request_models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Note text is required")
		return
	}

	userID := c.GetString("user_id")

	note, err := n.noteService.CreateNote(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, note, "Note created successfully")
}

// UpdateNote godoc
// @Summary Update a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body request_models.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/{id} [put]
func (n *NotesController) UpdateNote(c *gin.Context) {
	noteID := c.Param("id")
	if noteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Note ID is required")
		return
	}

	var req request_models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	note, err := n.noteService.UpdateNote(c.Request.Context(), noteID, req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, note, "Note updated successfully")
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (n *NotesController) DeleteNote(c *gin.Context) {
	noteID := c.Param("id")
	if noteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Note ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := n.noteService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Note deleted successfully")
}
