package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()

	tests := []struct {
		name        string
		cookieValue string // empty means no cookie at all
		mockSetup   func(m *MockLogouter)
	}{
		{
			name:        "clears the session",
			cookieValue: sessionID.String(),
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), sessionID).Return(nil)
			},
		},
		{
			name:        "service failure still succeeds",
			cookieValue: sessionID.String(),
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), sessionID).Return(errors.New("redis down"))
			},
		},
		{
			name: "no cookie",
		},
		{
			name:        "malformed cookie",
			cookieValue: "not-a-uuid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLogoutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: tt.cookieValue})
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, map[string]string{"message": "Logged out successfully"}, resp)

			// the session cookie is expired on every logout
			cookies := rr.Result().Cookies()
			assert.Len(t, cookies, 1)
			assert.Equal(t, middlewares.SessionCookieName, cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
