package response_models

type NoteResponse struct {
	ID          string `json:"id"`
	NoteText    string `json:"note_text"`
	NoteSummary string `json:"note_summary"`
	CreatedAt   string `json:"created_at"`
}
