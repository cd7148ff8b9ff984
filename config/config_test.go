package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(
		t, os.WriteFile(
			path, []byte(`
llm:
  provider: openai
  request_timeout: 30s
telegram:
  workers: 4
  album_settle: 300ms
storage:
  kind: memory
`), 0o600,
		),
	)
	t.Setenv("TELEGRAM_APITOKEN", "token")
	t.Setenv("ALLOWED_TELEGRAM_ID", "1,2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 4, cfg.Telegram.Workers)
	assert.Equal(t, 300*time.Millisecond, cfg.Telegram.AlbumSettle)
	assert.Equal(t, []int64{1, 2}, cfg.Telegram.AllowedTelegramID)
	assert.Equal(t, StorageMemory, cfg.Storage.Kind)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Hour, cfg.Session.IdleTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Endpoint)
}

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "token")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, StorageRedis, cfg.Storage.Kind)
	assert.Equal(t, 16, cfg.Telegram.Workers)
	assert.Equal(t, time.Second, cfg.Telegram.AlbumSettle)
}
