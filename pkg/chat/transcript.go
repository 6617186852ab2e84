package chat

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when appending a user or assistant message
// with no content.
var ErrEmptyContent = errors.New("message content is empty")

// Transcript is an append-only, ordered conversation history. The first
// entry is always the seed system message set at construction; it is never
// removed or reordered. The transcript grows for the life of the session
// and its order is exactly the order sent to the completion endpoint.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with the given system prompt.
func NewTranscript(systemPrompt string) *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append adds a message to the end of the transcript. User and assistant
// messages must have non-empty content.
func (t *Transcript) Append(msg Message) error {
	switch msg.Role {
	case RoleSystem, RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("unknown role: %q", msg.Role)
	}
	if msg.Content == "" && msg.Role != RoleSystem {
		return ErrEmptyContent
	}
	t.messages = append(t.messages, msg)
	return nil
}

// Snapshot returns a copy of the full message sequence in chronological
// order, suitable for use verbatim as a request payload.
func (t *Transcript) Snapshot() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages, including the seed system message.
func (t *Transcript) Len() int {
	return len(t.messages)
}
