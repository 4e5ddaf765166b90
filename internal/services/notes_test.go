package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"github.com/sbilibin2017/gw-notes-ai/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNotesService_List_OwnerScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()
	notes := []models.NoteDB{
		{NoteID: uuid.New(), UserID: &userID, Title: "groceries", Content: "milk"},
		{NoteID: uuid.New(), UserID: &userID, Title: "ideas", Content: "write more tests"},
	}

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)
	mockSeeder := services.NewMockContextSeeder(ctrl)

	mockReader.EXPECT().
		List(gomock.Any(), &userID).
		Return(notes, nil)

	seeded := make(chan string, 1)
	mockSeeder.EXPECT().
		SeedContext(gomock.Any(), sessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, digest string) error {
			seeded <- digest
			return nil
		})

	svc := services.NewNotesService(mockReader, mockWriter, mockSeeder, nil, true)

	got, err := svc.List(context.Background(), userID, sessionID)
	assert.NoError(t, err)
	assert.Equal(t, notes, got)

	select {
	case digest := <-seeded:
		assert.Contains(t, digest, "I will send some notes to use in future questions.")
		assert.Contains(t, digest, `1- groceries: "milk"`)
		assert.Contains(t, digest, `2- ideas: "write more tests"`)
	case <-time.After(2 * time.Second):
		t.Fatal("conversation was not seeded")
	}
}

func TestNotesService_List_GlobalScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	// global mode lists without an owner filter
	mockReader.EXPECT().
		List(gomock.Any(), gomock.Nil()).
		Return([]models.NoteDB{}, nil)

	svc := services.NewNotesService(mockReader, mockWriter, nil, nil, false)

	got, err := svc.List(context.Background(), userID, sessionID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotesService_List_EmptySkipsSeeding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)
	mockSeeder := services.NewMockContextSeeder(ctrl)
	// no SeedContext expectation: an empty list must not touch the model

	mockReader.EXPECT().
		List(gomock.Any(), &userID).
		Return([]models.NoteDB{}, nil)

	svc := services.NewNotesService(mockReader, mockWriter, mockSeeder, nil, true)

	_, err := svc.List(context.Background(), userID, sessionID)
	assert.NoError(t, err)
}

func TestNotesService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sessionID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	mockReader.EXPECT().
		List(gomock.Any(), &userID).
		Return(nil, errors.New("db error"))

	svc := services.NewNotesService(mockReader, mockWriter, nil, nil, true)

	_, err := svc.List(context.Background(), userID, sessionID)
	assert.EqualError(t, err, "db error")
}

func TestNotesService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()
	note := &models.NoteDB{NoteID: noteID, UserID: &userID, Title: "groceries", Content: "milk"}

	tests := []struct {
		name    string
		note    *models.NoteDB
		repoErr error
		wantErr error
	}{
		{name: "found", note: note},
		{name: "not found", note: nil, wantErr: services.ErrNoteNotFound},
		{name: "repo error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockNoteReader(ctrl)
			mockWriter := services.NewMockNoteWriter(ctrl)

			mockReader.EXPECT().
				GetByID(gomock.Any(), noteID, &userID).
				Return(tt.note, tt.repoErr)

			svc := services.NewNotesService(mockReader, mockWriter, nil, nil, true)
			got, err := svc.Get(context.Background(), userID, noteID)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, note, got)
			}
		})
	}
}

func TestNotesService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	var saved models.NoteDB
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.NoteDB) error {
			saved = note
			return nil
		})

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			var event models.NoteEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.NoteEventCreated, event.Operation)
			assert.Equal(t, userID.String(), event.UserID)
			return nil
		})

	svc := services.NewNotesService(mockReader, mockWriter, nil, mockKafka, true)

	note, err := svc.Create(context.Background(), userID, "groceries", "milk")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, note.NoteID)
	assert.Equal(t, &userID, note.UserID)
	assert.Equal(t, "groceries", note.Title)
	assert.Equal(t, "milk", note.Content)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.Equal(t, *note, saved)
}

func TestNotesService_Create_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))

	svc := services.NewNotesService(mockReader, mockWriter, nil, nil, true)

	note, err := svc.Create(context.Background(), userID, "groceries", "milk")
	assert.EqualError(t, err, "db error")
	assert.Nil(t, note)
}

func TestNotesService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()
	updated := &models.NoteDB{NoteID: noteID, UserID: &userID, Title: "new", Content: "content"}

	tests := []struct {
		name      string
		note      *models.NoteDB
		repoErr   error
		wantErr   error
		wantEvent bool
	}{
		{name: "updated", note: updated, wantEvent: true},
		{name: "not found", note: nil, wantErr: services.ErrNoteNotFound},
		{name: "repo error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockNoteReader(ctrl)
			mockWriter := services.NewMockNoteWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			mockWriter.EXPECT().
				Update(gomock.Any(), noteID, &userID, "new", "content").
				Return(tt.note, tt.repoErr)

			if tt.wantEvent {
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						var event models.NoteEvent
						assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, models.NoteEventUpdated, event.Operation)
						return nil
					})
			}

			svc := services.NewNotesService(mockReader, mockWriter, nil, mockKafka, true)
			got, err := svc.Update(context.Background(), userID, noteID, "new", "content")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, updated, got)
			}
		})
	}
}

func TestNotesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()

	tests := []struct {
		name      string
		deleted   bool
		repoErr   error
		wantErr   error
		wantEvent bool
	}{
		{name: "deleted", deleted: true, wantEvent: true},
		{name: "not found", deleted: false, wantErr: services.ErrNoteNotFound},
		{name: "repo error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockNoteReader(ctrl)
			mockWriter := services.NewMockNoteWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			mockWriter.EXPECT().
				Delete(gomock.Any(), noteID, &userID).
				Return(tt.deleted, tt.repoErr)

			if tt.wantEvent {
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						var event models.NoteEvent
						assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, models.NoteEventDeleted, event.Operation)
						return nil
					})
			}

			svc := services.NewNotesService(mockReader, mockWriter, nil, mockKafka, true)
			err := svc.Delete(context.Background(), userID, noteID)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotesService_Create_NoKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	// a nil Kafka writer only skips event publishing
	svc := services.NewNotesService(mockReader, mockWriter, nil, nil, true)

	note, err := svc.Create(context.Background(), userID, "groceries", "milk")
	assert.NoError(t, err)
	assert.NotNil(t, note)
}
