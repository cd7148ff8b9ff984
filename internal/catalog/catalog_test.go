package catalog

import (
	"testing"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/pkg/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryModeResolvesToItsOwnConfig(t *testing.T) {
	prompts := make(map[string]model.StudyMode)
	for _, mode := range model.StudyModes {
		config, err := Lookup(mode)
		require.NoError(t, err, "mode %s", mode)
		assert.Equal(t, mode, config.ID)
		assert.NotEmpty(t, config.SystemPrompt)
		assert.NotEmpty(t, config.Title.Text(local.Ara))
		assert.NotEmpty(t, config.Title.Text(local.Eng))
		assert.NotEmpty(t, config.Description.Text(local.Eng))

		other, dup := prompts[config.SystemPrompt]
		assert.False(t, dup, "modes %s and %s share a config", mode, other)
		prompts[config.SystemPrompt] = mode
	}
	assert.Len(t, modes, len(model.StudyModes))
}

func TestLookupUnknownMode(t *testing.T) {
	_, err := Lookup(model.StudyMode("HOMEWORK_MACHINE"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestListKeepsDisplayOrder(t *testing.T) {
	configs := List()
	require.Len(t, configs, len(model.StudyModes))
	for i, config := range configs {
		assert.Equal(t, model.StudyModes[i], config.ID)
	}
	assert.Equal(t, model.StudyModeAdvisor, configs[0].ID)
	assert.Equal(t, model.StudyModeNotebookLM, configs[1].ID)
}
