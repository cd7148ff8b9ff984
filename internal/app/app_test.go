package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStoragesMemory(t *testing.T) {
	ctx := context.Background()
	stores, err := newStorages(ctx, &config.Config{Storage: config.Storage{Kind: config.StorageMemory}})
	require.NoError(t, err)
	defer func() { _ = stores.close() }()

	require.NoError(t, stores.profiles.SaveProfile(ctx, 1, model.DefaultProfile()))
	_, err = stores.profiles.GetProfile(ctx, 1)
	assert.NoError(t, err)
}

func TestNewStoragesRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	stores, err := newStorages(
		ctx, &config.Config{
			Storage: config.Storage{Kind: config.StorageRedis},
			Redis:   config.Redis{Endpoint: mr.Addr()},
		},
	)
	require.NoError(t, err)
	defer func() { _ = stores.close() }()

	require.NoError(t, stores.profiles.SaveProfile(ctx, 1, model.DefaultProfile()))
	assert.True(t, mr.Exists("user_profile:1"))
}

func TestNewStoragesUnknown(t *testing.T) {
	_, err := newStorages(context.Background(), &config.Config{Storage: config.Storage{Kind: "s3"}})
	assert.ErrorIs(t, err, ErrUnknownStorage)
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	generator, err := newGenerator(
		ctx, config.LLM{Provider: config.ProviderOpenAI, OpenAIBaseURL: "http://localhost:8080"}, zap.NewNop(),
	)
	require.NoError(t, err)
	assert.IsType(t, &usecase.OpenAIUsecase{}, generator)

	_, err = newGenerator(ctx, config.LLM{Provider: "llama"}, zap.NewNop())
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
