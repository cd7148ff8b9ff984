package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/i7k15/ai-study-advisor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.log")

	log, err := New(config.Log{Level: "debug", FilePath: path, Production: true})
	require.NoError(t, err)

	log.Info("session started")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	log, err := New(config.Log{Level: "chatty"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}
