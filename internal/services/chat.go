package services

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
	"github.com/yuin/goldmark"
)

// ConversationStore defines per-session conversation history operations.
type ConversationStore interface {
	GetTurns(ctx context.Context, sessionID uuid.UUID) ([]models.ChatTurn, error)
	AppendTurns(ctx context.Context, sessionID uuid.UUID, turns ...models.ChatTurn) error
}

// ChatCompleter forwards a prompt with history to the hosted model.
type ChatCompleter interface {
	Complete(ctx context.Context, history []models.ChatTurn, prompt string) (string, error)
}

// ChatService relays prompts to the hosted model with the session's
// conversation history and renders replies to HTML. History is keyed by
// session id, never shared between callers.
type ChatService struct {
	store     ConversationStore
	completer ChatCompleter
	md        goldmark.Markdown
}

// NewChatService creates a new ChatService.
func NewChatService(store ConversationStore, completer ChatCompleter) *ChatService {
	return &ChatService{
		store:     store,
		completer: completer,
		md:        goldmark.New(),
	}
}

// Ask forwards the prompt plus the session's prior turns to the model,
// records both sides of the exchange, and returns the reply as HTML.
func (svc *ChatService) Ask(ctx context.Context, sessionID uuid.UUID, prompt string) (string, error) {
	history, err := svc.store.GetTurns(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load conversation history", "sessionID", sessionID, "error", err)
		return "", err
	}

	reply, err := svc.completer.Complete(ctx, history, prompt)
	if err != nil {
		return "", err
	}

	if err := svc.store.AppendTurns(ctx, sessionID,
		models.ChatTurn{Role: models.ChatRoleUser, Content: prompt},
		models.ChatTurn{Role: models.ChatRoleAssistant, Content: reply},
	); err != nil {
		// The reply is already in hand; losing one history write only
		// degrades future context.
		logger.Log.Errorw("failed to append conversation turns", "sessionID", sessionID, "error", err)
	}

	return svc.renderMarkdown(reply), nil
}

// SeedContext forwards the notes digest to the model and records the
// exchange, so later prompts in the same session can reference note content.
func (svc *ChatService) SeedContext(ctx context.Context, sessionID uuid.UUID, digest string) error {
	history, err := svc.store.GetTurns(ctx, sessionID)
	if err != nil {
		return err
	}

	reply, err := svc.completer.Complete(ctx, history, digest)
	if err != nil {
		return err
	}

	return svc.store.AppendTurns(ctx, sessionID,
		models.ChatTurn{Role: models.ChatRoleUser, Content: digest},
		models.ChatTurn{Role: models.ChatRoleAssistant, Content: reply},
	)
}

// renderMarkdown converts the model's markdown reply to HTML. On a render
// failure the raw text is returned.
func (svc *ChatService) renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := svc.md.Convert([]byte(content), &buf); err != nil {
		logger.Log.Errorw("failed to render markdown", "error", err)
		return content
	}
	return buf.String()
}
