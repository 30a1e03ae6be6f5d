package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/ansuz/internal/agent"
	"github.com/starford/ansuz/internal/models"
)

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate validates the create request.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
	)
}

// UpdateNoteRequest is the request body for updating a note.
// Omitted fields are left unchanged; present fields must be non-empty.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate validates the update request.
func (r UpdateNoteRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return validation.NewError("validation_empty_update", "at least one of title or content is required")
	}
	if r.Title != nil {
		if err := validation.Validate(*r.Title, validation.Required, validation.Length(1, 200)); err != nil {
			return err
		}
	}
	if r.Content != nil {
		return validation.Validate(*r.Content, validation.Required)
	}
	return nil
}

// NoteResponse is the note representation returned by all note endpoints.
type NoteResponse = models.Note

// NoteListResponse wraps note listings.
type NoteListResponse struct {
	Notes []models.Note `json:"notes"`
	Total int           `json:"total"`
}

// AgentQueryRequest is the request body for both agent endpoints.
type AgentQueryRequest struct {
	Query string `json:"query"`
}

// Validate validates the agent query request.
func (r AgentQueryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
	)
}

// AgentResponse is the buffered agent answer (aliased from the agent core).
type AgentResponse = agent.Result
