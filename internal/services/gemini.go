package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"smartcv/analyzer/internal/config"
	"smartcv/analyzer/internal/models"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

type geminiService struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client: client,
		cfg:    cfg,
	}, nil
}

// GenerateText implements GeminiService. Transport, auth and quota failures
// all surface as ErrServiceUnavailable; there is no retry here.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.cfg.Temperature
	topP := g.cfg.TopP
	topK := g.cfg.TopK

	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrServiceUnavailable, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", models.ErrServiceUnavailable)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", models.ErrServiceUnavailable)
	}

	return text, nil
}

// ModelName implements GeminiService.
func (g *geminiService) ModelName() string {
	return g.cfg.Model
}
