package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/config"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/logger"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/providers"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/web"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lorealbot",
		Short: "L'Oréal beauty-advice chatbot",
		Long:  "Serves a browser chat widget backed by an LLM relay, or chats directly from the terminal.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "~/.lorealbot/config.json", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildProvider wires the configured provider, wrapping it with fallbacks
// when any are configured.
func buildProvider(cfg *config.Config) providers.LLMProvider {
	timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
	primary := providers.NewOpenAIProvider(cfg.Provider.APIKey, cfg.Provider.Model,
		providers.WithAPIBase(cfg.Provider.APIBase),
		providers.WithTimeout(timeout),
	)
	if len(cfg.Provider.Fallbacks) == 0 {
		return primary
	}

	entries := make([]providers.FallbackEntry, 0, len(cfg.Provider.Fallbacks))
	for _, fb := range cfg.Provider.Fallbacks {
		key := fb.APIKey
		if key == "" {
			key = cfg.Provider.APIKey
		}
		base := fb.APIBase
		if base == "" {
			base = cfg.Provider.APIBase
		}
		entries = append(entries, providers.FallbackEntry{
			Provider: providers.NewOpenAIProvider(key, fb.Model,
				providers.WithAPIBase(base),
				providers.WithTimeout(timeout),
			),
			Model: fb.Model,
		})
	}
	return providers.NewFallbackProvider(primary, cfg.Provider.Model, entries)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chat widget and relay server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			srv := web.NewServer(cfg, buildProvider(cfg))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if err := srv.Start(ctx); err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			logger.InfoCF("main", "Shutting down", nil)
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			return srv.Stop(shutdownCtx)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lorealbot " + version)
		},
	}
}
