package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
)

// ChatAsker defines the interface that the chat service must implement.
type ChatAsker interface {
	Ask(ctx context.Context, sessionID uuid.UUID, prompt string) (string, error)
}

// AskRequest represents the JSON body for a chat prompt
// swagger:model AskRequest
type AskRequest struct {
	// Prompt
	// required: true
	// default: summarize my notes
	Prompt string `json:"prompt"`
}

// AskResponse represents the model's reply rendered as HTML
// swagger:model AskResponse
type AskResponse struct {
	// Model reply as HTML
	AI string `json:"ai"`
}

// NewAskHandler returns an HTTP handler relaying a prompt to the hosted
// model with the session's conversation history.
// @Summary Ask the AI about your notes
// @Description Forwards the prompt plus this session's conversation history to the hosted model and returns the reply as HTML
// @Tags notes
// @Accept json
// @Produce json
// @Param askRequest body handlers.AskRequest true "Prompt"
// @Success 201 {object} handlers.AskResponse "Model reply"
// @Failure 400 {object} handlers.NotesErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.NotesErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.NotesErrorResponse "AI service unavailable"
// @Router /notes/ai [post]
func NewAskHandler(svc ChatAsker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		sessionID := middlewares.GetSessionIDFromContext(ctx)

		html, err := svc.Ask(ctx, sessionID, req.Prompt)
		if err != nil {
			logger.Log.Errorw("chat relay failed", "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(NotesErrorResponse{
				Error: "AI service unavailable",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AskResponse{
			AI: html,
		})
	}
}
