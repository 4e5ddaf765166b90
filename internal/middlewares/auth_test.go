package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var errUnknownSession = errors.New("session not found")

// fakeSessionReader resolves a single known session.
type fakeSessionReader struct {
	sessionID uuid.UUID
	userID    uuid.UUID
	err       error
}

func (f *fakeSessionReader) Get(_ context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if sessionID != f.sessionID {
		return uuid.Nil, errUnknownSession
	}
	return f.userID, nil
}

func TestSessionMiddleware(t *testing.T) {
	sessionID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name         string
		cookie       *http.Cookie
		sessions     SessionReader
		expectedCode int
		wantNext     bool
	}{
		{
			name:         "valid session",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: sessionID.String()},
			sessions:     &fakeSessionReader{sessionID: sessionID, userID: userID},
			expectedCode: http.StatusOK,
			wantNext:     true,
		},
		{
			name:         "missing cookie",
			sessions:     &fakeSessionReader{sessionID: sessionID, userID: userID},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed cookie",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"},
			sessions:     &fakeSessionReader{sessionID: sessionID, userID: userID},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown session",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: uuid.NewString()},
			sessions:     &fakeSessionReader{sessionID: sessionID, userID: userID},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "session store error",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: sessionID.String()},
			sessions:     &fakeSessionReader{err: errors.New("redis down")},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// middleware injects both identifiers
				assert.Equal(t, sessionID, GetSessionIDFromContext(r.Context()))
				assert.Equal(t, userID, GetUserIDFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionMiddleware(tt.sessions)(next)

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if !tt.wantNext {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, map[string]string{"error": "Unauthorized"}, resp)
			}
		})
	}
}

func TestGetSessionFromContext_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, uuid.Nil, GetSessionIDFromContext(ctx))
	assert.Equal(t, uuid.Nil, GetUserIDFromContext(ctx))
}
