package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrNoteNotFound is returned when a note id does not exist or is not
	// visible to the requesting user.
	ErrNoteNotFound = errors.New("note not found")
)

// NoteReader defines read operations for notes.
type NoteReader interface {
	GetByID(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID) (*models.NoteDB, error) // Returns note or nil
	List(ctx context.Context, ownerID *uuid.UUID) ([]models.NoteDB, error)                     // Returns notes, newest first
}

// NoteWriter defines write operations for notes.
type NoteWriter interface {
	Save(ctx context.Context, note models.NoteDB) error                                                                  // Inserts a new note
	Update(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID, title, content string) (*models.NoteDB, error)     // Overwrites title/content
	Delete(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID) (bool, error)                                      // Removes a note
}

// ContextSeeder feeds the notes digest into a session's conversation.
type ContextSeeder interface {
	SeedContext(ctx context.Context, sessionID uuid.UUID, digest string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NotesService handles note CRUD, audit event publishing, and seeding the
// chat conversation with note context.
type NotesService struct {
	readRepo    NoteReader
	writeRepo   NoteWriter
	seeder      ContextSeeder
	kafkaWriter KafkaWriter
	ownerScoped bool
}

// NewNotesService creates a new NotesService. When ownerScoped is true all
// reads and writes are filtered by the acting user; otherwise notes form a
// single shared list.
func NewNotesService(
	readRepo NoteReader,
	writeRepo NoteWriter,
	seeder ContextSeeder,
	kafkaWriter KafkaWriter,
	ownerScoped bool,
) *NotesService {
	return &NotesService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		seeder:      seeder,
		kafkaWriter: kafkaWriter,
		ownerScoped: ownerScoped,
	}
}

// scope returns the owner filter for the acting user, nil in global mode.
func (s *NotesService) scope(userID uuid.UUID) *uuid.UUID {
	if s.ownerScoped {
		return &userID
	}
	return nil
}

// publishNoteEvent publishes a note mutation to Kafka.
func (s *NotesService) publishNoteEvent(ctx context.Context, event models.NoteEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal note event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.NoteID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish note event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Note event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// List returns all visible notes. As a side effect it concatenates the
// notes into a digest and seeds the session's conversation with it, so
// follow-up chat questions can reference note content. Seeding runs in the
// background and its failure never affects the response.
func (s *NotesService) List(ctx context.Context, userID, sessionID uuid.UUID) ([]models.NoteDB, error) {
	notes, err := s.readRepo.List(ctx, s.scope(userID))
	if err != nil {
		logger.Log.Errorw("failed to list notes", "userID", userID, "error", err)
		return nil, err
	}

	if s.seeder != nil && len(notes) > 0 {
		digest := buildNotesDigest(notes)
		go func() {
			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.seeder.SeedContext(seedCtx, sessionID, digest); err != nil {
				logger.Log.Errorw("failed to seed conversation with notes", "sessionID", sessionID, "error", err)
			}
		}()
	}

	return notes, nil
}

// buildNotesDigest concatenates note titles and content into a single
// context message for the model.
func buildNotesDigest(notes []models.NoteDB) string {
	var sb strings.Builder
	sb.WriteString("I will send some notes to use in future questions.\nnotes: ")
	for i, n := range notes {
		fmt.Fprintf(&sb, "%d- %s: %q ", i+1, n.Title, n.Content)
	}
	return strings.TrimSpace(sb.String())
}

// Get returns a single note by id.
func (s *NotesService) Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error) {
	note, err := s.readRepo.GetByID(ctx, noteID, s.scope(userID))
	if err != nil {
		logger.Log.Errorw("failed to get note", "noteID", noteID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Create persists a new note owned by the acting user. Both timestamps
// are set to the same instant.
func (s *NotesService) Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error) {
	now := time.Now().UTC()
	note := models.NoteDB{
		NoteID:    uuid.New(),
		UserID:    &userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.writeRepo.Save(ctx, note); err != nil {
		logger.Log.Errorw("failed to save note", "userID", userID, "error", err)
		return nil, err
	}

	s.publishNoteEvent(ctx, models.NoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: now.Unix(),
		NoteID:    note.NoteID.String(),
		UserID:    userID.String(),
		Operation: models.NoteEventCreated,
	})

	return &note, nil
}

// Update overwrites a note's title and content and refreshes its updated
// timestamp.
func (s *NotesService) Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error) {
	note, err := s.writeRepo.Update(ctx, noteID, s.scope(userID), title, content)
	if err != nil {
		logger.Log.Errorw("failed to update note", "noteID", noteID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	s.publishNoteEvent(ctx, models.NoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		NoteID:    noteID.String(),
		UserID:    userID.String(),
		Operation: models.NoteEventUpdated,
	})

	return note, nil
}

// Delete removes a note by id.
func (s *NotesService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	deleted, err := s.writeRepo.Delete(ctx, noteID, s.scope(userID))
	if err != nil {
		logger.Log.Errorw("failed to delete note", "noteID", noteID, "error", err)
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	s.publishNoteEvent(ctx, models.NoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		NoteID:    noteID.String(),
		UserID:    userID.String(),
		Operation: models.NoteEventDeleted,
	})

	return nil
}
