package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/chat"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/providers"
)

// terminalRenderer drives the conversation lifecycle on a terminal. The
// pending indicator is a single status line, erased once the call settles.
type terminalRenderer struct {
	out io.Writer
}

func (r *terminalRenderer) RenderMessage(msg chat.Message) {
	switch msg.Role {
	case chat.RoleUser:
		// The user's line is already on screen from the prompt.
	case chat.RoleAssistant:
		fmt.Fprintf(r.out, "\033[33mlorealbot>\033[0m %s\n\n", msg.Content)
	}
}

func (r *terminalRenderer) RenderError(text string) {
	fmt.Fprintf(r.out, "\033[31m%s\033[0m\n\n", text)
}

func (r *terminalRenderer) ShowPending() {
	fmt.Fprint(r.out, "\033[2mthinking...\033[0m")
}

func (r *terminalRenderer) ClearPending() {
	fmt.Fprint(r.out, "\r\033[K")
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the beauty assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			provider := buildProvider(cfg)
			completer := chat.CompleterFunc(func(ctx context.Context, messages []chat.Message) (string, error) {
				resp, err := provider.ChatCompletion(ctx, providers.ChatRequest{
					Model:       cfg.Provider.Model,
					Messages:    messages,
					Temperature: cfg.Provider.Temperature,
					MaxTokens:   cfg.Provider.MaxTokens,
				})
				if err != nil {
					return "", err
				}
				return providers.Reply(resp)
			})

			rl, err := readline.New("you> ")
			if err != nil {
				return err
			}
			defer rl.Close()

			// The REPL blocks on HandleSend, so the renderer can write to
			// stdout directly without fighting the prompt.
			ctrl := chat.NewController(cfg.Chat.SystemPrompt, completer, &terminalRenderer{out: os.Stdout})

			fmt.Println("L'Oréal Beauty Assistant. Ask about products and routines; /quit to exit.")
			for {
				line, err := rl.ReadLine()
				if err != nil { // io.EOF or interrupt
					return nil
				}
				if strings.TrimSpace(line) == "/quit" {
					return nil
				}
				// The readline loop blocks until the cycle settles, so the
				// send affordance is naturally disabled while busy.
				if err := ctrl.HandleSend(cmd.Context(), line); err != nil {
					return err
				}
			}
		},
	}
}
