package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/logger"
)

// ErrBusy is returned when HandleSend is invoked while a completion request
// is still outstanding. Hosts disable the send affordance while Busy()
// reports true, so hitting this is a host bug rather than a user error.
var ErrBusy = errors.New("a completion request is already in flight")

// Completer issues one completion call over the full transcript and returns
// the assistant's reply text.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, messages []Message) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, messages []Message) (string, error) {
	return f(ctx, messages)
}

// Renderer is the UI surface the controller drives. The pending indicator is
// UI-only state: it is never part of the transcript and must be removable
// independently of it. RenderError surfaces a failed exchange without
// touching the transcript.
type Renderer interface {
	RenderMessage(msg Message)
	RenderError(text string)
	ShowPending()
	ClearPending()
}

// Controller orchestrates one send cycle: validate input, grow the
// transcript, drive the renderer, issue the completion call, and reconcile
// the result. At most one call is outstanding at a time.
type Controller struct {
	transcript *Transcript
	completer  Completer
	renderer   Renderer
	pending    bool
}

// NewController creates a controller over a transcript seeded with
// systemPrompt. The completer and renderer are injected so the lifecycle
// can run against any host.
func NewController(systemPrompt string, completer Completer, renderer Renderer) *Controller {
	return &Controller{
		transcript: NewTranscript(systemPrompt),
		completer:  completer,
		renderer:   renderer,
	}
}

// Busy reports whether a completion request is outstanding. Hosts disable
// the send affordance while this is true.
func (c *Controller) Busy() bool {
	return c.pending
}

// Transcript exposes the conversation history owned by this controller.
func (c *Controller) Transcript() *Transcript {
	return c.transcript
}

// HandleSend runs one full send cycle for rawInput.
//
// Whitespace-only input is a no-op. The user message is appended and
// rendered before the network call starts. On success the assistant reply
// is appended and rendered; on any failure (transport, non-2xx status,
// missing reply field) an error is rendered without touching the
// transcript, so a malformed exchange cannot corrupt future context. The
// pending state is cleared on every exit path.
func (c *Controller) HandleSend(ctx context.Context, rawInput string) error {
	text := strings.TrimSpace(rawInput)
	if text == "" {
		return nil
	}
	if c.pending {
		return ErrBusy
	}

	userMsg := Message{Role: RoleUser, Content: text}
	if err := c.transcript.Append(userMsg); err != nil {
		return err
	}
	c.renderer.RenderMessage(userMsg)

	c.pending = true
	c.renderer.ShowPending()
	defer func() { c.pending = false }()

	reply, err := c.completer.Complete(ctx, c.transcript.Snapshot())
	c.renderer.ClearPending()
	if err != nil {
		logger.WarnCF("chat", "completion failed", map[string]interface{}{"error": err.Error()})
		c.renderer.RenderError(fmt.Sprintf("Sorry, something went wrong: %v", err))
		return nil
	}

	assistantMsg := Message{Role: RoleAssistant, Content: reply}
	if err := c.transcript.Append(assistantMsg); err != nil {
		c.renderer.RenderError(fmt.Sprintf("Sorry, something went wrong: %v", err))
		return nil
	}
	c.renderer.RenderMessage(assistantMsg)
	return nil
}
