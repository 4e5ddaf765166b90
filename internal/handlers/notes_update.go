package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"github.com/sbilibin2017/gw-notes-ai/internal/services"
)

// NoteUpdater defines the interface that the notes service must implement.
type NoteUpdater interface {
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error)
}

// NewUpdateNoteHandler returns an HTTP handler overwriting a note's
// title and content.
// @Summary Update a note
// @Description Overwrites title and content and refreshes the updated timestamp
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param noteRequest body handlers.NoteRequest true "New title and content"
// @Success 200 {object} models.NoteDB "Updated note"
// @Failure 400 {object} handlers.NotesErrorResponse "Invalid note id / request body"
// @Failure 401 {object} handlers.NotesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.NotesErrorResponse "Note not found"
// @Router /notes/{id} [put]
func NewUpdateNoteHandler(svc NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		noteID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "Invalid note id",
			})
			return
		}

		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID := middlewares.GetUserIDFromContext(ctx)

		note, err := svc.Update(ctx, userID, noteID, req.Title, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoteNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(NotesErrorResponse{
					Error: "Note not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(NotesErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(note)
	}
}
