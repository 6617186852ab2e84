package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 18800, cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.Provider.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Provider.APIBase)
	assert.Equal(t, DefaultSystemPrompt, cfg.Chat.SystemPrompt)
	assert.NotEmpty(t, cfg.Chat.SystemPrompt)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Provider.Model, cfg.Provider.Model)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": 9000},
		"provider": {"api_key": "file-key", "model": "gpt-4o"},
		"chat": {"system_prompt": "file prompt"}
	}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "file-key", cfg.Provider.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
	assert.Equal(t, "file prompt", cfg.Chat.SystemPrompt)
	// Unset fields keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": {"api_key": "file-key"}}`), 0644))

	t.Setenv("LOREALBOT_PROVIDER_API_KEY", "env-key")
	t.Setenv("LOREALBOT_SERVER_PORT", "8123")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Provider.APIKey, "env wins over file")
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoadConfigFromJSONEnv(t *testing.T) {
	t.Setenv("LOREALBOT_CONFIG_JSON", `{"provider": {"api_key": "json-env-key", "model": "gpt-4o"}}`)

	cfg, err := LoadConfig("does-not-matter.json")
	require.NoError(t, err)

	assert.Equal(t, "json-env-key", cfg.Provider.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "missing api key")

	cfg.Provider.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Provider.Model = " "
	assert.Error(t, cfg.Validate())

	cfg.Provider.Model = "gpt-4o-mini"
	cfg.Chat.SystemPrompt = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Provider.APIKey = "saved-key"
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.Provider.APIKey)
}
