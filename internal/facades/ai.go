package facades

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/models"
)

// ChatCompletionClient is the subset of the OpenAI client used by the facade.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatModelFacade forwards prompts with conversation history to the hosted model.
type ChatModelFacade struct {
	client ChatCompletionClient
	model  string
}

// NewChatModelFacade creates a new facade with a chat-completion client.
func NewChatModelFacade(client ChatCompletionClient, model string) *ChatModelFacade {
	return &ChatModelFacade{client: client, model: model}
}

// Complete sends the conversation history plus the new prompt to the model
// and returns the model's reply text.
func (f *ChatModelFacade) Complete(ctx context.Context, history []models.ChatTurn, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    f.model,
		Messages: messages,
	})
	if err != nil {
		logger.Log.Errorw("chat completion failed", "model", f.model, "error", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		logger.Log.Errorw("chat completion returned no choices", "model", f.model)
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
