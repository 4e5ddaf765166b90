package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users. Save reports whether the
// row was actually inserted; false means the username was taken.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (bool, error)
}

// SessionWriter defines server-side session operations.
type SessionWriter interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// ConversationCleaner removes a session's chat history.
type ConversationCleaner interface {
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	sessions      SessionWriter
	conversations ConversationCleaner
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, conversations ConversationCleaner) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		sessions:      sessions,
		conversations: conversations,
	}
}

// Register registers a new user. Username uniqueness is enforced by the
// storage layer, so two concurrent registrations of the same name yield
// exactly one success.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	inserted, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}
	if !inserted {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	return nil
}

// Login authenticates a user and establishes a server-side session.
// It returns the new session id and the user id.
func (svc *AuthService) Login(ctx context.Context, username, password string) (uuid.UUID, uuid.UUID, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, uuid.Nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return uuid.Nil, uuid.Nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return uuid.Nil, uuid.Nil, ErrInvalidCredentials
	}

	sessionID := uuid.New()
	if err := svc.sessions.Save(ctx, sessionID, user.UserID); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return uuid.Nil, uuid.Nil, err
	}

	return sessionID, user.UserID, nil
}

// Logout clears the session and its conversation history. Idempotent:
// logging out an unknown session succeeds.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	if err := svc.conversations.Delete(ctx, sessionID); err != nil {
		// History expires on its own; a failed cleanup must not fail logout.
		logger.Log.Errorw("failed to delete conversation history", "err", err)
	}
	return nil
}
