package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
)

// NoteCreator defines the interface that the notes service must implement.
type NoteCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error)
}

// NoteRequest represents the JSON body for creating or updating a note
// swagger:model NoteRequest
type NoteRequest struct {
	// Title
	// required: true
	// default: groceries
	Title string `json:"title"`

	// Content
	// required: true
	// default: milk, eggs
	Content string `json:"content"`
}

// NewCreateNoteHandler returns an HTTP handler creating a note.
// @Summary Create a note
// @Description Persists a new note with server-assigned timestamps, owned by the session's user
// @Tags notes
// @Accept json
// @Produce json
// @Param noteRequest body handlers.NoteRequest true "Note to create"
// @Success 201 {object} models.NoteDB "Created note"
// @Failure 400 {object} handlers.NotesErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.NotesErrorResponse "Unauthorized"
// @Router /notes [post]
func NewCreateNoteHandler(svc NoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID := middlewares.GetUserIDFromContext(ctx)

		note, err := svc.Create(ctx, userID, req.Title, req.Content)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(note)
	}
}
