package request_models

type CreateNoteRequest struct {
	NoteText    string `json:"note_text" binding:"required"`
	NoteSummary string `json:"note_summary"`
}

type UpdateNoteRequest struct {
	NoteText    *string `json:"note_text"`
	NoteSummary *string `json:"note_summary"`
}
