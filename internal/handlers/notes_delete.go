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
	"github.com/sbilibin2017/gw-notes-ai/internal/services"
)

// NoteDeleter defines the interface that the notes service must implement.
type NoteDeleter interface {
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

// DeleteNoteResponse represents a successful deletion response
// swagger:model DeleteNoteResponse
type DeleteNoteResponse struct {
	// Success message
	// default: Note deleted successfully
	Message string `json:"message"`
}

// NewDeleteNoteHandler returns an HTTP handler removing a note by id.
// @Summary Delete a note
// @Description Removes one note by identifier
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} handlers.DeleteNoteResponse "Note deleted"
// @Failure 400 {object} handlers.NotesErrorResponse "Invalid note id"
// @Failure 401 {object} handlers.NotesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.NotesErrorResponse "Note not found"
// @Router /notes/{id} [delete]
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
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

		userID := middlewares.GetUserIDFromContext(ctx)

		if err := svc.Delete(ctx, userID, noteID); err != nil {
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
		json.NewEncoder(w).Encode(DeleteNoteResponse{
			Message: "Note deleted successfully",
		})
	}
}
