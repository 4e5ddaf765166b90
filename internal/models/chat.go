package models

// Chat roles accepted by the hosted model.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatTurn is a single message in a per-session conversation.
type ChatTurn struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // Message text
}
