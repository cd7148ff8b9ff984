package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/session"
	in_memory "github.com/i7k15/ai-study-advisor/internal/storage/in-memory"
	key_value "github.com/i7k15/ai-study-advisor/internal/storage/key-value"
	"github.com/i7k15/ai-study-advisor/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrUnknownStorage  = errors.New("unknown storage kind")
)

type storages struct {
	profiles    usecase.ProfileStorage
	transcripts usecase.TranscriptStorage
	close       func() error
}

func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	stores, err := newStorages(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.close(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}

	bot, err := api.NewBotAPI(cfg.Telegram.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("failed to create new bot: %w", err)
	}
	logger.Info(
		"authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("storage", cfg.Storage.Kind),
	)

	profileUsecase := usecase.NewProfileUsecase(
		usecase.ProfileUsecaseDeps{
			ProfileStorage: stores.profiles,
			Transcripts:    stores.transcripts,
			Sessions:       session.NewStore(cfg.Session.IdleTimeout),
			Logger:         logger,
		},
	)

	studyUsecase := usecase.NewStudyUsecase(
		usecase.StudyUsecaseDeps{
			Generator:   generator,
			Transcripts: stores.transcripts,
			Logger:      logger,
		}, cfg.LLM.RequestTimeout,
	)

	attachmentUsecase := usecase.NewAttachmentUsecase(
		usecase.AttachmentUsecaseDeps{
			Files:  bot,
			Logger: logger,
		}, 4,
	)

	telegramUsecase, err := usecase.NewTelegramUsecase(
		cfg.Telegram, usecase.TelegramUsecaseDeps{
			Bot:         bot,
			Profile:     profileUsecase,
			Study:       studyUsecase,
			Attachments: attachmentUsecase,
			Logger:      logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram usecase: %w", err)
	}

	u := api.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()

	return telegramUsecase.Run(ctx, updates)
}

func newStorages(ctx context.Context, cfg *config.Config) (storages, error) {
	switch cfg.Storage.Kind {
	case config.StorageRedis:
		rdb := redis.NewClient(
			&redis.Options{
				Addr:     cfg.Redis.Endpoint,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			},
		)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return storages{}, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return storages{
			profiles:    key_value.NewProfileStorage(rdb),
			transcripts: key_value.NewTranscriptStorage(rdb),
			close:       rdb.Close,
		}, nil
	case config.StorageMemory:
		return storages{
			profiles:    in_memory.NewProfileStorage(),
			transcripts: in_memory.NewTranscriptStorage(),
			close:       func() error { return nil },
		}, nil
	default:
		return storages{}, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage.Kind)
	}
}

func newGenerator(ctx context.Context, cfg config.LLM, logger *zap.Logger) (usecase.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return usecase.NewGeminiUsecase(ctx, cfg, logger)
	case config.ProviderOpenAI:
		if cfg.OpenAIBaseURL != "" {
			baseURL, err := url.JoinPath(cfg.OpenAIBaseURL, "/v1")
			if err != nil {
				return nil, err
			}
			cfg.OpenAIBaseURL = baseURL
		}
		return usecase.NewOpenAIUsecase(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
