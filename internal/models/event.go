package models

// Note event operations published to Kafka.
const (
	NoteEventCreated = "created"
	NoteEventUpdated = "updated"
	NoteEventDeleted = "deleted"
)

// NoteEvent is an audit record for a note mutation.
type NoteEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the mutation
	NoteID    string `json:"note_id"`   // Affected note
	UserID    string `json:"user_id"`   // Acting user
	Operation string `json:"operation"` // created / updated / deleted
}
