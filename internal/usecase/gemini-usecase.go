package usecase

import (
	"context"
	"fmt"

	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/prompt"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const providerGemini = "gemini"

type GeminiUsecase struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiUsecase(ctx context.Context, cfg config.LLM, logger *zap.Logger) (*GeminiUsecase, error) {
	client, err := genai.NewClient(
		ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = prompt.DefaultModel
	}
	return &GeminiUsecase{
		client: client,
		model:  modelName,
		logger: logger,
	}, nil
}

func (g *GeminiUsecase) Generate(ctx context.Context, req prompt.Request) (string, error) {
	contents, generateConfig := geminiRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, generateConfig)
	if err != nil {
		return "", &ProviderError{Provider: providerGemini, Err: err}
	}

	if resp.UsageMetadata != nil {
		g.logger.Debug(
			"gemini usage",
			zap.String("model", g.model),
			zap.Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount),
			zap.Int32("total_tokens", resp.UsageMetadata.TotalTokenCount),
		)
	}
	return resp.Text(), nil
}

func geminiRequest(req prompt.Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, part := range req.Parts {
		if part.InlineData != nil {
			parts = append(parts, genai.NewPartFromBytes(part.InlineData.Data, part.InlineData.MimeType))
			continue
		}
		parts = append(parts, genai.NewPartFromText(part.Text))
	}

	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		TopP:              genai.Ptr(req.TopP),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, generateConfig
}
