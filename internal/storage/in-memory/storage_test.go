package in_memory

import (
	"context"
	"testing"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewProfileStorage()

	_, err := storage.GetProfile(ctx, 1)
	assert.ErrorIs(t, err, model.ErrProfileDoesNotExist)
	_, err = storage.GetStep(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStepDoesNotExist)

	profile := model.DefaultProfile()
	profile.Name = "Lina"
	require.NoError(t, storage.SaveProfile(ctx, 1, profile))
	require.NoError(t, storage.SaveStep(ctx, 1, model.OnboardingStepProfiling))

	got, err := storage.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	step, err := storage.GetStep(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.OnboardingStepProfiling, step)

	require.NoError(t, storage.DeleteUser(ctx, 1))
	_, err = storage.GetProfile(ctx, 1)
	assert.ErrorIs(t, err, model.ErrProfileDoesNotExist)
}

func TestTranscriptStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewTranscriptStorage()

	messages := []model.ChatMessage{
		model.NewUserMessage("q", model.StudyModeQA, []string{"a.pdf"}),
		model.NewAssistantMessage("a", model.StudyModeQA, false),
	}
	require.NoError(t, storage.SaveTranscript(ctx, 3, messages))
	messages[0].Content = "mutated"

	got, err := storage.GetTranscript(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "q", got[0].Content)
	assert.Len(t, got, 2)

	require.NoError(t, storage.DeleteTranscript(ctx, 3))
	_, err = storage.GetTranscript(ctx, 3)
	assert.ErrorIs(t, err, model.ErrTranscriptDoesNotExist)
}
