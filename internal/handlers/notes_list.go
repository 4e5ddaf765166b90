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

// NotesLister defines the interface that the notes service must implement.
type NotesLister interface {
	List(ctx context.Context, userID, sessionID uuid.UUID) ([]models.NoteDB, error)
}

// NotesErrorResponse represents an error response for note operations
// swagger:model NotesErrorResponse
type NotesErrorResponse struct {
	// Error message
	// default: Note not found
	Error string `json:"error"`
}

// NewListNotesHandler returns an HTTP handler listing all visible notes.
// @Summary List notes
// @Description Returns all notes visible to the session's user, newest first. Seeds the session's chat conversation with a digest of the notes.
// @Tags notes
// @Produce json
// @Success 200 {array} models.NoteDB "Notes"
// @Failure 401 {object} handlers.NotesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.NotesErrorResponse "Internal server error"
// @Router /notes [get]
func NewListNotesHandler(svc NotesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID := middlewares.GetUserIDFromContext(ctx)
		sessionID := middlewares.GetSessionIDFromContext(ctx)

		notes, err := svc.List(ctx, userID, sessionID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(notes)
	}
}
