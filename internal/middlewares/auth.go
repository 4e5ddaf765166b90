package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
)

// SessionCookieName is the cookie holding the opaque backend session identifier.
const SessionCookieName = "session_id"

// SessionReader resolves a session identifier to the authenticated user.
type SessionReader interface {
	Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// SessionMiddleware returns a middleware that authenticates requests by
// their session cookie and stores the session and user identifiers in the
// request context.
func SessionMiddleware(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			sessionID, err := uuid.Parse(cookie.Value)
			if err != nil {
				logger.Log.Errorw("authorization failed: malformed session cookie", "err", err)
				unauthorized(w)
				return
			}

			userID, err := sessions.Get(ctx, sessionID)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionToContext(ctx, sessionID, userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

type sessionIDContextKey struct{}
type userIDContextKey struct{}

var (
	sessionIDKey = sessionIDContextKey{}
	userIDKey    = userIDContextKey{}
)

// SetSessionToContext stores the session and user identifiers in ctx the
// same way SessionMiddleware does.
func SetSessionToContext(ctx context.Context, sessionID, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return context.WithValue(ctx, userIDKey, userID)
}

// GetSessionIDFromContext returns the session ID set by SessionMiddleware,
// or uuid.Nil if the request was not authenticated.
func GetSessionIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(sessionIDKey).(uuid.UUID)
	return id
}

// GetUserIDFromContext returns the user ID set by SessionMiddleware,
// or uuid.Nil if the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)
	return id
}
