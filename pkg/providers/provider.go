package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/chat"
)

// ErrNoReply is returned when a completion response is well-formed JSON but
// carries no assistant reply (empty choices or empty message content).
var ErrNoReply = errors.New("response contains no reply")

// APIError is a non-2xx response from the completion endpoint. The upstream
// status code and body text are preserved so callers can surface or relay
// them verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion request failed with status %d: %s", e.StatusCode, e.Body)
}

// ChatRequest is the chat-completions request payload. Messages are sent in
// transcript order.
type ChatRequest struct {
	Model       string         `json:"model"`
	Messages    []chat.Message `json:"messages"`
	Temperature float64        `json:"temperature,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
}

// ChatResponse is the subset of the chat-completions response the chatbot
// consumes.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice is one candidate completion.
type Choice struct {
	Message chat.Message `json:"message"`
}

// Reply extracts the assistant reply text from a response. It returns
// ErrNoReply when the response has no choices or an empty message content.
func Reply(resp *ChatResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrNoReply
	}
	return resp.Choices[0].Message.Content, nil
}

// LLMProvider issues chat completion requests against a model endpoint.
type LLMProvider interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	GetDefaultModel() string
}
