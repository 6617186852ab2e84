package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultSystemPrompt is the seed system message constraining the assistant
// to L'Oréal products, beauty routines, and related recommendations.
const DefaultSystemPrompt = "You are a helpful beauty advisor for L'Oréal. " +
	"Only answer questions about L'Oréal products, skincare and haircare routines, " +
	"makeup, and beauty-related recommendations. If a question is unrelated to " +
	"beauty or L'Oréal, politely explain that you can only help with beauty topics."

type Config struct {
	Server   ServerConfig   `json:"server"`
	Provider ProviderConfig `json:"provider"`
	Chat     ChatConfig     `json:"chat"`
}

type ServerConfig struct {
	Host     string `json:"host" env:"LOREALBOT_SERVER_HOST"`
	Port     int    `json:"port" env:"LOREALBOT_SERVER_PORT"`
	Username string `json:"username" env:"LOREALBOT_SERVER_USERNAME"`
	Password string `json:"password" env:"LOREALBOT_SERVER_PASSWORD"`
}

// FallbackConfig defines an alternative model to try when the primary fails.
type FallbackConfig struct {
	Model   string `json:"model"`
	APIBase string `json:"api_base,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
}

type ProviderConfig struct {
	APIKey         string           `json:"api_key" env:"LOREALBOT_PROVIDER_API_KEY"`
	APIBase        string           `json:"api_base" env:"LOREALBOT_PROVIDER_API_BASE"`
	Model          string           `json:"model" env:"LOREALBOT_PROVIDER_MODEL"`
	Temperature    float64          `json:"temperature" env:"LOREALBOT_PROVIDER_TEMPERATURE"`
	MaxTokens      int              `json:"max_tokens" env:"LOREALBOT_PROVIDER_MAX_TOKENS"`
	TimeoutSeconds int              `json:"timeout_seconds" env:"LOREALBOT_PROVIDER_TIMEOUT_SECONDS"`
	Fallbacks      []FallbackConfig `json:"fallbacks,omitempty"`
}

type ChatConfig struct {
	SystemPrompt string `json:"system_prompt" env:"LOREALBOT_CHAT_SYSTEM_PROMPT"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 18800,
		},
		Provider: ProviderConfig{
			APIBase:        "https://api.openai.com/v1",
			Model:          "gpt-4o-mini",
			Temperature:    0.7,
			MaxTokens:      1024,
			TimeoutSeconds: 60,
		},
		Chat: ChatConfig{
			SystemPrompt: DefaultSystemPrompt,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Support full config from env var (for containers / serverless)
	if cfgJSON := os.Getenv("LOREALBOT_CONFIG_JSON"); cfgJSON != "" {
		if err := json.Unmarshal([]byte(cfgJSON), cfg); err != nil {
			return nil, fmt.Errorf("parsing LOREALBOT_CONFIG_JSON: %w", err)
		}
		if err := env.Parse(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			if err := env.Parse(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields required to reach the completion endpoint.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Provider.APIKey) == "" {
		return fmt.Errorf("provider.api_key is required (or LOREALBOT_PROVIDER_API_KEY)")
	}
	if strings.TrimSpace(c.Provider.Model) == "" {
		return fmt.Errorf("provider.model is required")
	}
	if strings.TrimSpace(c.Chat.SystemPrompt) == "" {
		return fmt.Errorf("chat.system_prompt is required")
	}
	return nil
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) > 1 && path[1] == '/' {
			return home + path[1:]
		}
		return home
	}
	return path
}
