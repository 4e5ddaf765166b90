package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
)

type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// GetByID returns the note with the given id, or nil if absent.
// When ownerID is non-nil the note must also belong to that user.
func (r *NoteReadRepository) GetByID(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID) (*models.NoteDB, error) {
	const query = `
		SELECT note_id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE note_id = $1
		  AND ($2::UUID IS NULL OR user_id = $2)
		LIMIT 1
	`

	var note models.NoteDB
	err := r.db.GetContext(ctx, &note, query, noteID, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// List returns notes ordered by creation time, newest first.
// When ownerID is non-nil only that user's notes are returned.
func (r *NoteReadRepository) List(ctx context.Context, ownerID *uuid.UUID) ([]models.NoteDB, error) {
	const query = `
		SELECT note_id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE ($1::UUID IS NULL OR user_id = $1)
		ORDER BY created_at DESC
	`

	notes := make([]models.NoteDB, 0)
	err := r.db.SelectContext(ctx, &notes, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(notes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return notes, nil
}

type NoteWriteRepository struct {
	db *sqlx.DB
}

func NewNoteWriteRepository(db *sqlx.DB) *NoteWriteRepository {
	return &NoteWriteRepository{db: db}
}

// execer resolves the executor: the per-request transaction when
// TxMiddleware put one in the context, the pool otherwise.
func (r *NoteWriteRepository) execer(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new note with both timestamps set to the same instant.
func (r *NoteWriteRepository) Save(ctx context.Context, note models.NoteDB) error {
	query := `
		INSERT INTO notes (note_id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{note.NoteID, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt}

	_, err := r.execer(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{note.NoteID, note.UserID, note.Title},
		"error", err,
	)

	return err
}

// Update overwrites title and content and refreshes updated_at.
// Returns the updated row, or nil if no matching note exists.
func (r *NoteWriteRepository) Update(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID, title, content string) (*models.NoteDB, error) {
	query := `
		UPDATE notes
		SET title = $3, content = $4, updated_at = NOW()
		WHERE note_id = $1
		  AND ($2::UUID IS NULL OR user_id = $2)
		RETURNING note_id, user_id, title, content, created_at, updated_at
	`
	args := []any{noteID, ownerID, title, content}

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.execer(ctx), &note, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, ownerID, title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// Delete removes the note and reports whether a row was deleted.
func (r *NoteWriteRepository) Delete(ctx context.Context, noteID uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	query := `
		DELETE FROM notes
		WHERE note_id = $1
		  AND ($2::UUID IS NULL OR user_id = $2)
	`
	args := []any{noteID, ownerID}

	res, err := r.execer(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
