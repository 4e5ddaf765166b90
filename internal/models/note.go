package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteDB represents a note record in the database.
// UserID is nullable: in global scope mode notes may predate owner tracking.
type NoteDB struct {
	NoteID    uuid.UUID  `json:"note_id" db:"note_id"`       // Primary key
	UserID    *uuid.UUID `json:"user_id" db:"user_id"`       // Owning user, may be nil
	Title     string     `json:"title" db:"title"`           // Note title
	Content   string     `json:"content" db:"content"`       // Note body
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
}
