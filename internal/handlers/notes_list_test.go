package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	notes := []models.NoteDB{
		{NoteID: uuid.New(), UserID: &userID, Title: "second", Content: "b", CreatedAt: now, UpdatedAt: now},
		{NoteID: uuid.New(), UserID: &userID, Title: "first", Content: "a", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockNotesLister)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockNotesLister) {
				m.EXPECT().List(gomock.Any(), userID, sessionID).Return(notes, nil)
			},
			expectedCode: 200,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockNotesLister) {
				m.EXPECT().List(gomock.Any(), userID, sessionID).Return([]models.NoteDB{}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockNotesLister) {
				m.EXPECT().List(gomock.Any(), userID, sessionID).Return(nil, errors.New("db failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNotesLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListNotesHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			req = req.WithContext(middlewares.SetSessionToContext(req.Context(), sessionID, userID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var got []models.NoteDB
				err := json.Unmarshal(rr.Body.Bytes(), &got)
				assert.NoError(t, err)
			}
		})
	}
}
