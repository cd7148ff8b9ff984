package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/prompt"
	openai_tools "github.com/i7k15/ai-study-advisor/pkg/openai-tools"
	"github.com/ledongthuc/pdf"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const providerOpenAI = "openai"

type OpenAIUsecase struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIUsecase talks to any OpenAI-compatible endpoint. cfg.OpenAIBaseURL
// must already include the API version path.
func NewOpenAIUsecase(cfg config.LLM, logger *zap.Logger) *OpenAIUsecase {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = openai.GPT4o
	}
	return &OpenAIUsecase{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelName,
		logger: logger,
	}
}

func (gpt *OpenAIUsecase) Generate(ctx context.Context, req prompt.Request) (string, error) {
	messages, err := openAIMessages(req)
	if err != nil {
		return "", err
	}

	if gpt.logger.Core().Enabled(zapcore.DebugLevel) {
		if tokenCount, err := openai_tools.CountToken(messages, gpt.model); err != nil {
			gpt.logger.Debug("count token error", zap.Error(err))
		} else {
			gpt.logger.Debug("prompt size", zap.String("model", gpt.model), zap.Int("tokens", tokenCount))
		}
	}

	stream, err := gpt.client.CreateChatCompletionStream(
		ctx, openai.ChatCompletionRequest{
			Model:       gpt.model,
			Temperature: req.Temperature,
			TopP:        req.TopP,
			N:           1,
			Messages:    messages,
			Stream:      true,
		},
	)
	if err != nil {
		return "", &ProviderError{Provider: providerOpenAI, Err: err}
	}
	defer stream.Close()

	var answer strings.Builder
	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &ProviderError{Provider: providerOpenAI, Err: err}
		}
		if len(response.Choices) == 0 {
			continue
		}
		answer.WriteString(response.Choices[0].Delta.Content)
	}
	return answer.String(), nil
}

// openAIMessages flattens the request into a system and a user message.
// Images are sent as data URLs, plain text is inlined and PDFs are reduced
// to their text.
func openAIMessages(req prompt.Request) ([]openai.ChatCompletionMessage, error) {
	parts := make([]openai.ChatMessagePart, 0, len(req.Parts))
	for _, part := range req.Parts {
		if part.InlineData == nil {
			parts = append(parts, textPart(part.Text))
			continue
		}

		data := part.InlineData
		mimeType := strings.ToLower(data.MimeType)
		switch {
		case strings.HasPrefix(mimeType, "image/"):
			parts = append(
				parts, openai.ChatMessagePart{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data.Data),
						Detail: openai.ImageURLDetailAuto,
					},
				},
			)
		case mimeType == "application/pdf":
			text, err := pdfText(data.Data)
			if err != nil {
				return nil, err
			}
			parts = append(parts, textPart(text))
		default:
			parts = append(parts, textPart(string(data.Data)))
		}
	}

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		},
		{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: parts,
		},
	}, nil
}

func textPart(text string) openai.ChatMessagePart {
	return openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: text,
	}
}

func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to extract pdf text: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	return strings.TrimSpace(builder.String()), nil
}
