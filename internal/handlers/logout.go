package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// LogoutResponse represents a logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out successfully
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. It clears the
// server-side session and expires the cookie. Always succeeds: logging
// out without a session is a no-op.
// @Summary User logout
// @Description Clears the session. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if cookie, err := r.Cookie(middlewares.SessionCookieName); err == nil {
			if sessionID, err := uuid.Parse(cookie.Value); err == nil {
				if err := svc.Logout(r.Context(), sessionID); err != nil {
					// Logout stays 200; the session expires on its own.
					logger.Log.Errorw("failed to clear session", "err", err)
				}
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out successfully",
		})
	}
}
